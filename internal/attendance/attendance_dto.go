package attendance

type CheckInRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type RecordResponse struct {
	ID                string  `json:"id,omitempty"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	Position          string  `json:"position"`
	Date              string  `json:"date"`
	CheckInTime       *string `json:"check_in_time"`
	CheckInGuardName  *string `json:"check_in_guard_name"`
	CheckOutTime      *string `json:"check_out_time"`
	CheckOutGuardName *string `json:"check_out_guard_name"`
	Status            string  `json:"status"`
}

type DailyReportResponse struct {
	Date    string           `json:"date"`
	Records []RecordResponse `json:"records"`
	Stats   Stats            `json:"stats"`
}
