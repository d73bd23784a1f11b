package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Zamy17/absensi-karyawan/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const statsTTL = 48 * time.Hour

// ConsumeAttendanceRecorded memelihara rekap harian di Redis dari event
// absensi, sehingga dashboard bisa membaca hitungan live tanpa memukul
// database. Rekap disimpan sebagai hash per tanggal dan kedaluwarsa
// sendiri setelah dua hari.
func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance recorded consumer stopped")
				return
			}
			log.Error("fetch attendance recorded message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceRecorded
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := applyToDailyStats(ctx, rdb, event); err != nil {
			log.Error("update daily stats failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("date", event.Date),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance recorded message failed", zap.Error(err))
			continue
		}

		log.Info("daily stats updated from attendance event",
			zap.String("event_type", event.EventType),
			zap.String("employee_id", event.EmployeeID),
			zap.String("date", event.Date),
		)
	}
}

func applyToDailyStats(ctx context.Context, rdb *redis.Client, event events.AttendanceRecorded) error {
	key := DailyStatsKey(event.Date)

	pipe := rdb.TxPipeline()
	switch event.EventType {
	case events.TypeAttendanceCheckedIn:
		pipe.HIncrBy(ctx, key, "checked_in", 1)
		pipe.HIncrBy(ctx, key, "status:"+event.Status, 1)
	case events.TypeAttendanceCheckedOut:
		pipe.HIncrBy(ctx, key, "checked_out", 1)
	default:
		return fmt.Errorf("unknown attendance event type: %s", event.EventType)
	}
	pipe.Expire(ctx, key, statsTTL)

	_, err := pipe.Exec(ctx)
	return err
}

// DailyStatsKey adalah key hash rekap absensi untuk satu tanggal.
func DailyStatsKey(date string) string {
	return "attendance:stats:" + date
}
