// Package quotes holds the static daily-quote set pushed to devices.
package quotes

import "math/rand"

// Quote is a short religious text with its citation.
type Quote struct {
	Type    string `json:"type"` // hadis, ayet or dua
	Content string `json:"content"`
	Source  string `json:"source"`
}

// All is the built-in quote set. Content is fixed; quotes are picked at
// schedule time, not rotated per delivery.
var All = []Quote{
	{Type: "hadis", Content: "Kim inanarak ve sevabını Allah'tan bekleyerek Ramazan orucunu tutarsa, geçmiş günahları bağışlanır.", Source: "Buhârî, Îmân, 28"},
	{Type: "ayet", Content: "Ey iman edenler! Oruç, sizden öncekilere farz kılındığı gibi size de farz kılındı. Umulur ki korunursunuz.", Source: "Bakara Suresi, 183"},
	{Type: "hadis", Content: "Oruç bir kalkandır. Oruçlu, kötü söz söylemesin ve kavga etmesin.", Source: "Buhârî, Savm, 2"},
	{Type: "ayet", Content: "Ramazan ayı, insanlara yol gösterici, doğrunun ve doğruyu eğriden ayırmanın açık delilleri olarak Kur'an'ın indirildiği aydır.", Source: "Bakara Suresi, 185"},
	{Type: "dua", Content: "Allah'ım! Senden, rızanı ve cenneti istiyorum. Gazabından ve cehennemden sana sığınırım.", Source: "İbn Mâce, Dua, 4"},
	{Type: "hadis", Content: "Oruçlunun ağız kokusu, Allah katında misk kokusundan daha hoştur.", Source: "Buhârî, Savm, 9"},
	{Type: "ayet", Content: "Şüphesiz, iyilikler kötülükleri giderir. Bu, öğüt alanlar için bir hatırlatmadır.", Source: "Hud Suresi, 114"},
	{Type: "hadis", Content: "Cennette Reyyan denilen bir kapı vardır. Oruçlular kıyamet günü buradan çağrılır.", Source: "Buhârî, Savm, 4"},
	{Type: "dua", Content: "Allah'ım! Beni affet, bana merhamet et, bana doğru yolu göster, beni rızıklandır.", Source: "Müslim, Zikir, 35"},
	{Type: "hadis", Content: "Kim Ramazan ayında bir oruçluyu iftar ettirirse, oruçlunun sevabı kadar sevap kazanır.", Source: "Tirmizî, Savm, 82"},
	{Type: "ayet", Content: "Şüphesiz, Allah sabredenlerle beraberdir.", Source: "Bakara Suresi, 153"},
	{Type: "dua", Content: "Ey kalpleri çeviren Allah! Kalbimi dinin üzere sabit kıl.", Source: "Tirmizî, Deavat, 89"},
	{Type: "ayet", Content: "Şüphesiz, her zorlukla beraber bir kolaylık vardır.", Source: "İnşirah Suresi, 6"},
	{Type: "dua", Content: "Allah'ım! Sen affedicisin, affetmeyi seversin, beni de affet.", Source: "Tirmizî, Deavat, 85"},
	{Type: "hadis", Content: "Güzel söz sadakadır.", Source: "Buhârî, Edeb, 34"},
	{Type: "ayet", Content: "Ey Rabbimiz! Bize dünyada da ahirette de iyilik ver ve bizi ateş azabından koru.", Source: "Bakara Suresi, 201"},
}

// Random picks one quote pseudo-randomly.
func Random() Quote {
	return All[rand.Intn(len(All))]
}

// Title returns the push title for a quote's type.
func Title(q Quote) string {
	switch q.Type {
	case "hadis":
		return "📖 Günün Hadisi"
	case "ayet":
		return "🕌 Günün Ayeti"
	case "dua":
		return "🤲 Günün Duası"
	default:
		return "📝 Günün Mesajı"
	}
}
