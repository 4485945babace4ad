package models

import "time"

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

type Donation struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	FullName        string     `gorm:"size:255" json:"full_name"`
	CitizenID       string     `gorm:"size:20;index" json:"citizen_id"` // เลขบัตรประชาชน หรือ เลขผู้เสียภาษี
	Address         string     `gorm:"type:text" json:"address"`
	Phone           string     `gorm:"size:30" json:"phone"`
	Email           string     `gorm:"size:150" json:"email"`
	DonationDate    *time.Time `json:"donation_date"`
	Amount          float64    `gorm:"type:decimal(12,2)" json:"amount"`
	PaymentMethod   string     `gorm:"size:50" json:"payment_method"`
	ReceiptURL      string     `gorm:"type:text" json:"receipt_url"`
	ReceiptKey      string     `gorm:"size:255" json:"-"`
	DeliveryType    string     `gorm:"size:50" json:"delivery_type"`
	ShippingAddress string     `gorm:"type:text" json:"shipping_address"`
	Status          string     `gorm:"size:20;default:pending" json:"status"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
