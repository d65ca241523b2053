package domain

import (
	"fmt"
	"strings"
)

// KeyKind — тип события ввода.
type KeyKind int

const (
	KeyDigit KeyKind = iota + 1
	KeyDecimal
	KeyOperator
	KeyEquals
	KeyClear
	KeyDelete
	KeyToggleSign
	KeyPercent
)

// Key — одно нажатие. Digit заполнен для KeyDigit, Operator — для KeyOperator.
type Key struct {
	Kind     KeyKind
	Digit    byte
	Operator Operator
}

// aliases — имена клавиш, которые присылают браузер (KeyboardEvent.key), TUI и агенты.
var aliases = map[string]Key{
	".":         {Kind: KeyDecimal},
	",":         {Kind: KeyDecimal},
	"+":         {Kind: KeyOperator, Operator: OpAdd},
	"-":         {Kind: KeyOperator, Operator: OpSub},
	"*":         {Kind: KeyOperator, Operator: OpMul},
	"x":         {Kind: KeyOperator, Operator: OpMul},
	"×":         {Kind: KeyOperator, Operator: OpMul},
	"/":         {Kind: KeyOperator, Operator: OpDiv},
	"÷":         {Kind: KeyOperator, Operator: OpDiv},
	"=":         {Kind: KeyEquals},
	"enter":     {Kind: KeyEquals},
	"c":         {Kind: KeyClear},
	"ac":        {Kind: KeyClear},
	"clear":     {Kind: KeyClear},
	"escape":    {Kind: KeyClear},
	"delete":    {Kind: KeyDelete},
	"backspace": {Kind: KeyDelete},
	"negate":    {Kind: KeyToggleSign},
	"±":         {Kind: KeyToggleSign},
	"+/-":       {Kind: KeyToggleSign},
	"%":         {Kind: KeyPercent},
	"percent":   {Kind: KeyPercent},
}

// ParseKey разбирает имя клавиши. Регистр не важен.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return Key{Kind: KeyDigit, Digit: name[0]}, nil
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}
	return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// ParseKeys разбирает все клавиши; при первой неизвестной возвращает ошибку.
func ParseKeys(names []string) ([]Key, error) {
	keys := make([]Key, 0, len(names))
	for _, n := range names {
		k, err := ParseKey(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
