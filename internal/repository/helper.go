package repository

import (
	"encoding/base64"
	"time"
)

const (
	timeFormat = "2006-01-02T15:04:05.999999999Z07:00" // reduce precision from RFC3339Nano as date format

	DefaultPageNum = 10
	PageMaxNum     = 100
)

// DecodeCursor will decode cursor from user for mysql
func DecodeCursor(encodedTime string) (time.Time, error) {
	byt, err := base64.StdEncoding.DecodeString(encodedTime)
	if err != nil {
		return time.Time{}, err
	}

	timeString := string(byt)
	t, err := time.Parse(timeFormat, timeString)

	return t, err
}

// EncodeCursor will encode cursor from mysql to user
func EncodeCursor(t time.Time) string {
	timeString := t.Format(timeFormat)

	return base64.StdEncoding.EncodeToString([]byte(timeString))
}

// PageVerify clamps num into [1, PageMaxNum], using DefaultPageNum for
// non-positive values.
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = DefaultPageNum
	}
	if *num > PageMaxNum {
		*num = PageMaxNum
	}
}
