package model

import (
	"encoding/json"
	"fmt"
)

// Типы оповещений пользователей.
const (
	AlertNone                  AlertType = "None"
	AlertGroupRemoved          AlertType = "GroupRemoved"
	AlertElectiveLessonRemoved AlertType = "ElectiveLessonRemoved"
)

// AlertType — тип оповещения. Сервер сериализует его либо именем enum,
// либо числовым значением, поэтому принимаем оба варианта.
type AlertType string

func (t *AlertType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = AlertType(s)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("alertType: expected string or number, got %s", data)
	}
	switch n {
	case 1:
		*t = AlertGroupRemoved
	case 2:
		*t = AlertElectiveLessonRemoved
	default:
		*t = AlertNone
	}
	return nil
}

// UserAlert — оповещение пользователя, подлежащее доставке.
type UserAlert struct {
	ID             int64             `json:"id"`
	UserTelegramID int64             `json:"userTelegramId"`
	AlertType      AlertType         `json:"alertType"`
	Options        map[string]string `json:"options"`
}
