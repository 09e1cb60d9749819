package vakit

import "strings"

// Cities lists the 81 provinces of Türkiye in the order the city picker
// shows them.
var Cities = []string{
	"Adana", "Adıyaman", "Afyonkarahisar", "Ağrı", "Aksaray", "Amasya",
	"Ankara", "Antalya", "Ardahan", "Artvin", "Aydın", "Balıkesir",
	"Bartın", "Batman", "Bayburt", "Bilecik", "Bingöl", "Bitlis",
	"Bolu", "Burdur", "Bursa", "Çanakkale", "Çankırı", "Çorum",
	"Denizli", "Diyarbakır", "Düzce", "Edirne", "Elazığ", "Erzincan",
	"Erzurum", "Eskişehir", "Gaziantep", "Giresun", "Gümüşhane", "Hakkari",
	"Hatay", "Iğdır", "Isparta", "İstanbul", "İzmir", "Kahramanmaraş",
	"Karabük", "Karaman", "Kars", "Kastamonu", "Kayseri", "Kilis",
	"Kırıkkale", "Kırklareli", "Kırşehir", "Kocaeli", "Konya", "Kütahya",
	"Malatya", "Manisa", "Mardin", "Mersin", "Muğla", "Muş",
	"Nevşehir", "Niğde", "Ordu", "Osmaniye", "Rize", "Sakarya",
	"Samsun", "Şanlıurfa", "Siirt", "Sinop", "Sivas", "Şırnak",
	"Tekirdağ", "Tokat", "Trabzon", "Tunceli", "Uşak", "Van",
	"Yalova", "Yozgat", "Zonguldak",
}

// LookupCity finds the canonical spelling of name in Cities. Comparison is
// on normalized forms with dotless ı folded to i, so "istanbul",
// "ISTANBUL" and "İstanbul" all match.
func LookupCity(name string) (string, bool) {
	key := foldCity(name)
	if key == "" {
		return "", false
	}
	for _, c := range Cities {
		if foldCity(c) == key {
			return c, true
		}
	}
	return "", false
}

func foldCity(name string) string {
	return strings.ReplaceAll(NormalizeCity(name), "ı", "i")
}
