package aladhan

// response is the raw top-level shape returned by the upstream API.
type response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   data   `json:"data"`
}

// calendarResponse wraps the per-month endpoint, which returns one data
// object per day.
type calendarResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   []data `json:"data"`
}

type data struct {
	Timings timings  `json:"timings"`
	Date    dateInfo `json:"date"`
}

// timings carries the six tracked clock times. The API returns more keys;
// the rest are ignored at decode time.
type timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

type dateInfo struct {
	Gregorian gregorianDate `json:"gregorian"`
	Hijri     hijriDate     `json:"hijri"`
}

type gregorianDate struct {
	Date    string `json:"date"` // DD-MM-YYYY
	Weekday struct {
		En string `json:"en"`
	} `json:"weekday"`
}

type hijriDate struct {
	Date  string `json:"date"` // DD-MM-YYYY in the Hijri calendar
	Day   string `json:"day"`
	Year  string `json:"year"`
	Month struct {
		Number int    `json:"number"`
		En     string `json:"en"`
		Ar     string `json:"ar"`
	} `json:"month"`
}
