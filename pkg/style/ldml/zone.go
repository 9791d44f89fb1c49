package ldml

import "time"

func shortZone(t time.Time) string {
	name, offset := t.Zone()
	if name == "" || name[0] == '+' || name[0] == '-' {
		return gmtOffset(offset, false)
	}
	return name
}

func longZone(t time.Time) string {
	name, offset := t.Zone()
	if offset == 0 && name == "UTC" {
		return "Coordinated Universal Time"
	}
	return gmtOffset(offset, true)
}

// gmtOffset renders the localized GMT format: "GMT", "GMT-8", "GMT-08:00".
func gmtOffset(offset int, long bool) string {
	if offset == 0 {
		return "GMT"
	}
	dst := []byte("GMT")
	sign, hours, minutes := splitOffset(offset)
	dst = append(dst, sign)
	if long {
		dst = appendInt(dst, hours, 2)
		dst = append(dst, ':')
		return string(appendInt(dst, minutes, 2))
	}
	dst = appendInt(dst, hours, 1)
	if minutes != 0 {
		dst = append(dst, ':')
		dst = appendInt(dst, minutes, 2)
	}
	return string(dst)
}

// appendOffset renders ISO style offsets: "-0800" or "-08:00", with "Z" for
// zero when zulu is set.
func appendOffset(dst []byte, offset int, colon, minutes, zulu bool) []byte {
	if zulu && offset == 0 {
		return append(dst, 'Z')
	}
	sign, h, m := splitOffset(offset)
	dst = append(dst, sign)
	dst = appendInt(dst, h, 2)
	if !minutes {
		return dst
	}
	if colon {
		dst = append(dst, ':')
	}
	return appendInt(dst, m, 2)
}

func appendShortOffset(dst []byte, offset int, zulu bool) []byte {
	if zulu && offset == 0 {
		return append(dst, 'Z')
	}
	sign, h, m := splitOffset(offset)
	dst = append(dst, sign)
	dst = appendInt(dst, h, 2)
	if m != 0 {
		dst = appendInt(dst, m, 2)
	}
	return dst
}

func splitOffset(offset int) (byte, int, int) {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return sign, offset / 3600, (offset % 3600) / 60
}
