package tz

// DefaultZones seeds a fresh zone list and replaces one that would
// otherwise become empty. The first entry is the default anchor.
var DefaultZones = []string{
	"UTC",
	"America/New_York",
	"Europe/Stockholm",
	"Asia/Tokyo",
}

// commonZones is the static catalog fallback: one or two well-known
// identifiers per UTC offset, covering every whole-hour offset from -11
// to +14 plus the 30/45-minute zones. Kept small on purpose; the platform
// tree is preferred whenever it is readable.
var commonZones = []string{
	"UTC",
	"Pacific/Midway",
	"Pacific/Honolulu",
	"America/Anchorage",
	"America/Los_Angeles",
	"America/Tijuana",
	"America/Vancouver",
	"America/Denver",
	"America/Phoenix",
	"America/Chicago",
	"America/Mexico_City",
	"America/New_York",
	"America/Toronto",
	"America/Bogota",
	"America/Caracas",
	"America/Halifax",
	"America/Santiago",
	"America/St_Johns",
	"America/Sao_Paulo",
	"America/Buenos_Aires",
	"Atlantic/Azores",
	"Africa/Casablanca",
	"Europe/Lisbon",
	"Europe/London",
	"Europe/Amsterdam",
	"Europe/Berlin",
	"Europe/Madrid",
	"Europe/Paris",
	"Europe/Rome",
	"Europe/Stockholm",
	"Europe/Warsaw",
	"Europe/Zurich",
	"Africa/Cairo",
	"Europe/Athens",
	"Europe/Istanbul",
	"Africa/Nairobi",
	"Europe/Moscow",
	"Asia/Baghdad",
	"Asia/Tehran",
	"Asia/Baku",
	"Asia/Dubai",
	"Asia/Tbilisi",
	"Asia/Kabul",
	"Asia/Karachi",
	"Asia/Tashkent",
	"Asia/Yekaterinburg",
	"Asia/Colombo",
	"Asia/Kolkata",
	"Asia/Kathmandu",
	"Asia/Almaty",
	"Asia/Dhaka",
	"Asia/Omsk",
	"Asia/Yangon",
	"Asia/Bangkok",
	"Asia/Ho_Chi_Minh",
	"Asia/Jakarta",
	"Asia/Hong_Kong",
	"Asia/Shanghai",
	"Asia/Singapore",
	"Asia/Taipei",
	"Australia/Perth",
	"Asia/Seoul",
	"Asia/Tokyo",
	"Asia/Yakutsk",
	"Australia/Adelaide",
	"Australia/Darwin",
	"Australia/Brisbane",
	"Australia/Melbourne",
	"Australia/Sydney",
	"Asia/Vladivostok",
	"Pacific/Guadalcanal",
	"Pacific/Auckland",
	"Pacific/Fiji",
	"Pacific/Chatham",
	"Pacific/Tongatapu",
	"Pacific/Kiritimati",
}
