package domain

// Countries is the registration catalog of traveler countries. Registration
// rejects anything outside it; the list mirrors what the frontend offers.
var Countries = []string{
	"Afghanistan", "Armenia", "Austria", "Azerbaijan",
	"Belarus", "Belgium", "Bulgaria",
	"China", "Croatia", "Czech Republic",
	"Estonia", "Finland", "France",
	"Georgia", "Germany", "Greece",
	"Hungary", "India", "Indonesia", "Iran", "Italy",
	"Japan", "Kazakhstan", "Kyrgyzstan",
	"Latvia", "Lithuania", "Malaysia", "Moldova", "Mongolia",
	"Netherlands", "Norway", "Pakistan", "Philippines", "Poland", "Portugal",
	"Romania", "Russia", "Serbia", "Slovakia", "South Korea", "Spain",
	"Sweden", "Switzerland", "Tajikistan", "Thailand", "Turkey", "Turkmenistan",
	"Ukraine", "Uzbekistan", "Vietnam",
}

var countrySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Countries))
	for _, c := range Countries {
		set[c] = struct{}{}
	}
	return set
}()

// KnownCountry reports whether name is in the registration catalog.
func KnownCountry(name string) bool {
	_, ok := countrySet[name]
	return ok
}
