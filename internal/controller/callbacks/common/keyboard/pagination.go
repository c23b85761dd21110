package keyboard

import (
	"fmt"

	"github.com/go-telegram/bot/models"
)

// PageCount возвращает число страниц для total элементов при размере страницы pageSize.
func PageCount(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage приводит номер страницы в допустимый диапазон [0, pages).
// Нужен после удаления элементов, когда список мог сократиться.
func ClampPage(page, pages int) int {
	if pages <= 0 {
		return 0
	}
	if page < 0 {
		return 0
	}
	if page >= pages {
		return pages - 1
	}
	return page
}

// PaginationButtons создаёт ряд кнопок пагинации.
// prefix — префикс callback-токена (например "EL_LISTPAGE|"),
// currentPage — текущая страница (0-based), totalPages — всего страниц.
// Кнопки за границами списка не рендерятся.
func PaginationButtons(prefix string, currentPage, totalPages int) []models.InlineKeyboardButton {
	if totalPages <= 1 {
		return nil
	}

	var buttons []models.InlineKeyboardButton

	if currentPage > 0 {
		buttons = append(buttons, Button("◀️", fmt.Sprintf("%s%d", prefix, currentPage-1)))
	}

	// Индикатор страницы
	buttons = append(buttons, Button(
		fmt.Sprintf("📄 %d/%d", currentPage+1, totalPages),
		"noop",
	))

	if currentPage < totalPages-1 {
		buttons = append(buttons, Button("▶️", fmt.Sprintf("%s%d", prefix, currentPage+1)))
	}

	return buttons
}

// AddPagination добавляет пагинацию к builder
func (b *Builder) AddPagination(prefix string, currentPage, totalPages int) *Builder {
	buttons := PaginationButtons(prefix, currentPage, totalPages)
	if len(buttons) > 0 {
		b.Row(buttons...)
	}
	return b
}
