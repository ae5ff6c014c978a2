package models

// PostalEntry is one parsed line of a locale's postal registry. Street and
// HouseNumbers are optional; an empty string means the registry had no
// value for them. HouseNumbers is either a single value, an inclusive
// numeric range "A-B", or an explicit list "A,B,C".
type PostalEntry struct {
	PostalCode   string `json:"postal_code"`
	Locality     string `json:"locality"`
	Street       string `json:"street,omitempty"`
	HouseNumbers string `json:"house_numbers,omitempty"`
	District     string `json:"district"`
	County       string `json:"county"`
	Region       string `json:"region"`
}

// Address is a fully resolved street address derived from a postal entry,
// with a concrete house number folded into Street.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	District   string `json:"district"`
	County     string `json:"county"`
	Region     string `json:"region"`
}
