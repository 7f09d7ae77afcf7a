package dto

// PaymentForm carries payment form fields. Student is a required select;
// Amount arrives as the raw number input; Status defaults to pending.
type PaymentForm struct {
	Student string `json:"student" validate:"required"`
	Amount  string `json:"amount" validate:"required"`
	Status  string `json:"status" validate:"omitempty,oneof=pending paid overdue canceled"`
}

// PaymentPayload is the wire shape for payment create/update.
type PaymentPayload struct {
	Student int64   `json:"student"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

// Payload builds the upstream payload, coercing the student select and
// the amount.
func (f PaymentForm) Payload() (PaymentPayload, error) {
	student, err := foreignKey("student", f.Student)
	if err != nil {
		return PaymentPayload{}, err
	}
	amount, err := numberField("amount", f.Amount)
	if err != nil {
		return PaymentPayload{}, err
	}
	status := f.Status
	if status == "" {
		status = "pending"
	}
	return PaymentPayload{Student: student, Amount: amount, Status: status}, nil
}
