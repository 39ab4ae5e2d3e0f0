package models

import "encoding/json"

type Order struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Table          string `json:"table" gorm:"column:table_no;size:10"`
	Name           string `json:"name" gorm:"size:50"`
	ItemsJSON      string `json:"-" gorm:"column:items;type:text"`
	Total          int64  `json:"total"`
	Song           string `json:"song" gorm:"size:100"`
	ImagePath      string `json:"image_path" gorm:"size:200"`
	Timestamp      string `json:"timestamp" gorm:"size:50"`
	Processed      bool   `json:"processed" gorm:"default:false"`
	TableSize      int    `json:"table_size"`
	ConsentPrivacy bool   `json:"consent_privacy" gorm:"default:false"`
	ConsentTerms   bool   `json:"consent_terms" gorm:"default:false"`
}

// OrderItem is one line of an order. An empty ServedBy means nobody has
// claimed the item yet; attribution credits exactly one staff name per item.
type OrderItem struct {
	Name     string `json:"name"`
	ServedBy string `json:"served_by"`
}

// ItemList decodes the items payload defensively. The backend stores items as
// a JSON text column and older rows (and older clients) wrote it in several
// shapes: a list of item objects, a list of bare strings, or the whole list
// double-encoded as a JSON string. Anything that cannot be decoded into a
// list degrades to nil rather than surfacing an error.
type ItemList []OrderItem

func (l *ItemList) UnmarshalJSON(data []byte) error {
	*l = decodeItems(data)
	return nil
}

func decodeItems(data []byte) []OrderItem {
	var objs []OrderItem
	if err := json.Unmarshal(data, &objs); err == nil {
		return objs
	}

	// List of bare strings: ["A","B"]
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		items := make([]OrderItem, len(names))
		for i, n := range names {
			items[i] = OrderItem{Name: n}
		}
		return items
	}

	// Double-encoded: "\"[...]\"" — unwrap once and retry.
	var inner string
	if err := json.Unmarshal(data, &inner); err == nil {
		var nested ItemList
		if err := json.Unmarshal([]byte(inner), &nested); err == nil {
			return nested
		}
	}

	return nil
}

// ParseItems decodes a raw items column value.
func ParseItems(raw string) ItemList {
	if raw == "" {
		return nil
	}
	return decodeItems([]byte(raw))
}

// Items returns the order's parsed item list.
func (o *Order) Items() ItemList {
	return ParseItems(o.ItemsJSON)
}

// SetItems re-encodes the item list into the stored column. A nil list is
// stored as an empty JSON array, not null.
func (o *Order) SetItems(items ItemList) error {
	if items == nil {
		items = ItemList{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.ItemsJSON = string(b)
	return nil
}

// OrderView is the wire form of an order: what GET /api/orders returns and
// what the polling client, store and aggregation packages consume.
type OrderView struct {
	ID        uint     `json:"id"`
	Table     string   `json:"table"`
	Name      string   `json:"name"`
	Items     ItemList `json:"items"`
	Total     int64    `json:"total"`
	Song      string   `json:"song"`
	ImagePath string   `json:"image_path"`
	Timestamp string   `json:"timestamp"`
	Processed bool     `json:"processed"`
	TableSize int      `json:"table_size"`
}

// View converts a stored order to its wire form, parsing items defensively.
func (o *Order) View() OrderView {
	return OrderView{
		ID:        o.ID,
		Table:     o.Table,
		Name:      o.Name,
		Items:     o.Items(),
		Total:     o.Total,
		Song:      o.Song,
		ImagePath: o.ImagePath,
		Timestamp: o.Timestamp,
		Processed: o.Processed,
		TableSize: o.TableSize,
	}
}
