package model

// TurkishCities is the built-in city list served to clients.
// Coordinates feed the upstream timings lookups; İstanbul is the default.
var TurkishCities = []City{
	{Name: "İstanbul", Latitude: 41.0082, Longitude: 28.9784},
	{Name: "Ankara", Latitude: 39.9334, Longitude: 32.8597},
	{Name: "İzmir", Latitude: 38.4237, Longitude: 27.1428},
	{Name: "Bursa", Latitude: 40.1885, Longitude: 29.0610},
	{Name: "Bursa / İnegöl", Latitude: 40.0778, Longitude: 29.5130},
	{Name: "Antalya", Latitude: 36.8969, Longitude: 30.7133},
	{Name: "Adana", Latitude: 37.0000, Longitude: 35.3213},
	{Name: "Konya", Latitude: 37.8667, Longitude: 32.4833},
	{Name: "Gaziantep", Latitude: 37.0662, Longitude: 37.3833},
	{Name: "Şanlıurfa", Latitude: 37.1591, Longitude: 38.7969},
	{Name: "Mersin", Latitude: 36.8000, Longitude: 34.6333},
	{Name: "Diyarbakır", Latitude: 37.9144, Longitude: 40.2306},
	{Name: "Hatay", Latitude: 36.2000, Longitude: 36.1600},
	{Name: "Manisa", Latitude: 38.6191, Longitude: 27.4289},
	{Name: "Kayseri", Latitude: 38.7312, Longitude: 35.4787},
	{Name: "Samsun", Latitude: 41.2867, Longitude: 36.3300},
	{Name: "Balıkesir", Latitude: 39.6484, Longitude: 27.8826},
	{Name: "Kahramanmaraş", Latitude: 37.5858, Longitude: 36.9371},
	{Name: "Van", Latitude: 38.4891, Longitude: 43.4089},
	{Name: "Aydın", Latitude: 37.8400, Longitude: 27.8400},
	{Name: "Denizli", Latitude: 37.7765, Longitude: 29.0864},
	{Name: "Sakarya", Latitude: 40.7731, Longitude: 30.3943},
	{Name: "Tekirdağ", Latitude: 40.9833, Longitude: 27.5167},
	{Name: "Muğla", Latitude: 37.2153, Longitude: 28.3636},
	{Name: "Eskişehir", Latitude: 39.7767, Longitude: 30.5206},
	{Name: "Mardin", Latitude: 37.3212, Longitude: 40.7245},
	{Name: "Trabzon", Latitude: 41.0015, Longitude: 39.7178},
	{Name: "Ordu", Latitude: 40.9839, Longitude: 37.8764},
	{Name: "Malatya", Latitude: 38.3552, Longitude: 38.3095},
	{Name: "Erzurum", Latitude: 39.9000, Longitude: 41.2700},
	{Name: "Afyonkarahisar", Latitude: 38.7507, Longitude: 30.5567},
}

// DefaultCity is used until a device picks one.
func DefaultCity() City { return TurkishCities[0] }

// CityByName resolves a city from the built-in list.
func CityByName(name string) (City, bool) {
	for _, c := range TurkishCities {
		if c.Name == name {
			return c, true
		}
	}
	return City{}, false
}
