package util

import (
	"strconv"
	"time"
)

// GetMidnight 取当天零点，作为每日指标快照的日期键
func GetMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func StrToUint64(s any) uint64 {
	str, ok := s.(string)
	if !ok {
		return 0
	}
	v, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// StrSliceToUInt64Slice 字符串切片转 uint64 切片
func StrSliceToUInt64Slice(strs []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(strs))
	for _, s := range strs {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, v)
	}
	return ids, nil
}
