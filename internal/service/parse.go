package service

import (
	"regexp"
	"strconv"
)

var (
	mentionPattern = regexp.MustCompile(`@(\w+)`)
	valuePattern   = regexp.MustCompile(`[-+]?(?:\d+(?:\.\d+)?|\.\d+)`)
	titlePattern   = regexp.MustCompile(`^/\w+ (.+)$`)
)

// ParsedCommand - аргументы, извлеченные из текста команды.
// Mention == "" означает, что упоминания не было; HasValue == false -
// что числа не было (значение по умолчанию выбирает вызывающий).
type ParsedCommand struct {
	Mention  string
	Value    float64
	HasValue bool
}

// ParseCommand достает из текста первое упоминание @user и первое число.
// Никогда не ошибается: отсутствующие части просто не заполнены.
func ParseCommand(text string) ParsedCommand {
	var cmd ParsedCommand

	if m := mentionPattern.FindStringSubmatch(text); m != nil {
		cmd.Mention = m[1]
	}
	if v := valuePattern.FindString(text); v != "" {
		value, err := strconv.ParseFloat(v, 64)
		if err == nil {
			cmd.Value = value
			cmd.HasValue = true
		}
	}
	return cmd
}

// ParseTitle проверяет форму "/команда новый заголовок" и возвращает
// заголовок. ok == false, если после команды нет пробела и текста.
func ParseTitle(text string) (title string, ok bool) {
	m := titlePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
