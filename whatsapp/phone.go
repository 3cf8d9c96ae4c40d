package whatsapp

import "strings"

//NormalizePhone coerces a free-form phone number into the international
//62xxx dialing form without the leading plus sign, the format the relay expects.
//Unrecognized prefixes are returned unchanged, normalization is best-effort
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.Replace(phone, " ", "", -1)
	phone = strings.Replace(phone, "-", "", -1)

	switch {
	case phone == "":
		return ""
	case strings.HasPrefix(phone, "+62"):
		return phone[1:]
	case strings.HasPrefix(phone, "62"):
		return phone
	case strings.HasPrefix(phone, "0"):
		return "62" + phone[1:]
	case strings.HasPrefix(phone, "8"):
		return "62" + phone
	}

	return phone
}
