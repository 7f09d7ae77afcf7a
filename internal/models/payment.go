package models

// Payment statuses as serialized by the upstream API.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusOverdue  = "overdue"
	PaymentStatusCanceled = "canceled"
)

// Payment mirrors the upstream payment record. Amount is a
// decimal-as-string; DateCreated and DatePaid are upstream-owned.
type Payment struct {
	ID          int64   `json:"id"`
	Student     int64   `json:"student"`
	StudentName string  `json:"student_name"`
	Amount      string  `json:"amount"`
	Status      string  `json:"status"`
	DateCreated string  `json:"date_created"`
	DatePaid    *string `json:"date_paid"`
}
