package service

import (
	"fmt"
	"strings"

	"github.com/Robert-K/telegram-group-counter/internal/storage"
)

// FormatBoard строит текст табло: заголовок и по строке на пользователя в
// порядке появления. Счёт печатается кратко, без лишних нулей.
func FormatBoard(title string, entries []storage.ScoreEntry) string {
	if len(entries) == 0 {
		return title + "\nNo scores yet. Interact to start!"
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString(":")
	for _, entry := range entries {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s: %.10g", entry.DisplayName, entry.Score))
	}
	return sb.String()
}
