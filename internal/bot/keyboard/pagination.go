package keyboard

import (
	"fmt"
	"strconv"
)

// PaginationButtons returns the prev/label/next navigation row for a paged
// menu. Pages are zero-based; the label button fires the noop callback so a
// tap on it does nothing visible.
func PaginationButtons(action string, page, totalPages int) []InlineButton {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}

	buttons := make([]InlineButton, 0, 3)

	if page > 0 {
		if data, err := EncodeCallback(action, strconv.Itoa(page-1)); err == nil {
			buttons = append(buttons, InlineButton{Text: "⬅️ Prev", Data: data})
		}
	}

	buttons = append(buttons, InlineButton{
		Text: fmt.Sprintf("📄 %d/%d", page+1, totalPages),
		Data: CallbackNoop,
	})

	if page < totalPages-1 {
		if data, err := EncodeCallback(action, strconv.Itoa(page+1)); err == nil {
			buttons = append(buttons, InlineButton{Text: "Next ➡️", Data: data})
		}
	}

	return buttons
}
