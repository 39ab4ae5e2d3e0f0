package models

import "strings"

type Waiting struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:50"`
	Phone     string `json:"phone" gorm:"size:20"`
	TableSize int    `json:"tableSize" gorm:"column:table_size"`
	Timestamp string `json:"timestamp" gorm:"size:50"`
	Consent   bool   `json:"consent" gorm:"default:false"`
}

// WaitingView is the wire form of a waiting entry. Public endpoints mask the
// phone number to its last four digits; the admin list carries it in full.
type WaitingView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	TableSize int    `json:"tableSize"`
	Timestamp string `json:"timestamp"`
}

// CanonicalPhone strips everything but digits so that stored numbers compare
// exactly regardless of how the caller hyphenated them.
func CanonicalPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskPhone keeps only the last four digits.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return phone[len(phone)-4:]
}

// View renders the entry for public consumption (masked phone).
func (w *Waiting) View() WaitingView {
	return WaitingView{
		ID:        w.ID,
		Name:      w.Name,
		Phone:     MaskPhone(w.Phone),
		TableSize: w.TableSize,
		Timestamp: w.Timestamp,
	}
}

// AdminView renders the entry with the full phone number.
func (w *Waiting) AdminView() WaitingView {
	return WaitingView{
		ID:        w.ID,
		Name:      w.Name,
		Phone:     w.Phone,
		TableSize: w.TableSize,
		Timestamp: w.Timestamp,
	}
}
