package igdb

// Game is the raw catalog record. Any field may be absent upstream: slices
// are nil, nested objects are nil pointers, and rating is a pointer so a
// missing value is distinguishable from zero.
type Game struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Slug              string            `json:"slug"`
	FirstReleaseDate  int64             `json:"first_release_date"`
	InvolvedCompanies []InvolvedCompany `json:"involved_companies"`
	Cover             *Image            `json:"cover"`
	Genres            []Named           `json:"genres"`
	GameModes         []Named           `json:"game_modes"`
	Platforms         []Named           `json:"platforms"`
	Storyline         string            `json:"storyline"`
	Summary           string            `json:"summary"`
	Rating            *float64          `json:"rating"`
	URL               string            `json:"url"`
}

// Named is a reference entity carrying only a display name (genres, game
// modes, platforms).
type Named struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// InvolvedCompany links a game to a company with its involvement flags.
type InvolvedCompany struct {
	Developer bool     `json:"developer"`
	Company   *Company `json:"company"`
}

// Company carries the company name and optional logo reference.
type Company struct {
	Name string `json:"name"`
	Logo *Image `json:"logo"`
}

// Image is an upstream image reference. URLs are protocol-relative and embed
// a size token (for example t_thumb).
type Image struct {
	URL string `json:"url"`
}

// Developer returns the first involved company flagged as developer.
func (g Game) Developer() *Company {
	for _, entry := range g.InvolvedCompanies {
		if entry.Developer && entry.Company != nil {
			return entry.Company
		}
	}
	return nil
}
