package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NumericString — числовое поле, которое в хранилище встречается и строкой ("3"), и числом (3).
// Некорректные значения не считаются ошибкой: ограничение просто трактуется как отсутствующее.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	// число, bool или что-то ещё — сохраняем как есть, разбор произойдёт при чтении
	*n = NumericString(data)
	return nil
}

// Int возвращает целое значение. Дробная запись с нулевой дробной частью ("3.0", 3e0) тоже целое.
// ok=false, если значение пустое или не является целым числом.
func (n NumericString) Int() (int, bool) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// Float возвращает значение с плавающей точкой.
func (n NumericString) Float() (float64, bool) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IntPtr — удобная обёртка над Int для опциональных ограничений.
func (n NumericString) IntPtr() *int {
	v, ok := n.Int()
	if !ok {
		return nil
	}
	return &v
}

func (n NumericString) FloatPtr() *float64 {
	v, ok := n.Float()
	if !ok {
		return nil
	}
	return &v
}
