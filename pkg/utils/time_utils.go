package utils

import "time"

// Korea standard time (+09:00)
var kstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

const LocalDateTimeLayout = "2006-01-02T15:04:05"

func KST() *time.Location { return kstLoc }

func NowKST() time.Time { return time.Now().In(kstLoc) }

func FormatLocalDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kstLoc).Format(LocalDateTimeLayout)
}
