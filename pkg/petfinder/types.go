package petfinder

// SearchParams narrows an animal search. Zero values mean "not
// specified" and are omitted from the query.
type SearchParams struct {
	Type             string // dog, cat, rabbit, bird, small-furry, horse, barnyard, scales-fins-other
	Location         string // city, "City, ST", or postal code
	DistanceMiles    int
	Limit            int
	Size             string // small, medium, large, xlarge
	Age              string // baby, young, adult, senior
	Gender           string // male, female
	GoodWithChildren bool
	GoodWithDogs     bool
	GoodWithCats     bool
}

// Breed names the animal's primary and secondary breeds.
type Breed struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Mixed     bool   `json:"mixed"`
}

// Photo holds image URLs at a few sizes.
type Photo struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
	Full   string `json:"full"`
}

// Contact is how to reach the listing organization.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address struct {
		City     string `json:"city"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// Animal is one adoptable listing.
type Animal struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Breeds      Breed   `json:"breeds"`
	Age         string  `json:"age"`
	Gender      string  `json:"gender"`
	Size        string  `json:"size"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Photos      []Photo `json:"photos"`
	Status      string  `json:"status"`
	Contact     Contact `json:"contact"`
	URL         string  `json:"url"`
	Distance    float64 `json:"distance"`
}

// Pagination reports how large the full result set is.
type Pagination struct {
	CountPerPage int `json:"count_per_page"`
	TotalCount   int `json:"total_count"`
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
}

// SearchResponse is the /animals payload.
type SearchResponse struct {
	Animals    []Animal   `json:"animals"`
	Pagination Pagination `json:"pagination"`
}
