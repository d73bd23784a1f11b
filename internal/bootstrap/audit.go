package bootstrap

import "context"

// AuditLog adalah satu entri jejak audit operasional (bukan data
// absensi).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
