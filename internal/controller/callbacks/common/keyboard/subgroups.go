package keyboard

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/kaidigital/schedulekai_bot/internal/model"
)

// SubgroupRows создаёт ряды кнопок выбора подгруппы.
// Реальные подгруппы рендерятся по номеру; сентинел -1 никогда не
// показывается числом — вместо него одна кнопка "для всех підгруп".
// prefix — префикс callback-токена (например "GR_SUB|").
func SubgroupRows(prefix string, subgroups []int) [][]models.InlineKeyboardButton {
	rows := make([][]models.InlineKeyboardButton, 0, len(subgroups)+1)

	hasAll := false
	for _, sg := range subgroups {
		if sg == model.NoSubgroup {
			hasAll = true
			continue
		}
		rows = append(rows, []models.InlineKeyboardButton{
			Button(fmt.Sprintf("Підгрупа %d", sg), fmt.Sprintf("%s%d", prefix, sg)),
		})
	}

	if hasAll || len(rows) == 0 {
		rows = append(rows, []models.InlineKeyboardButton{
			Button("Для всіх підгруп", fmt.Sprintf("%s%d", prefix, model.NoSubgroup)),
		})
	}

	return rows
}
