package football

// Team is the summary shape returned by the league listing.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	TLA       string `json:"tla,omitempty"`
	Crest     string `json:"crest,omitempty"`
	Founded   int    `json:"founded,omitempty"`
}

// Competition identifies the league a listing or match belongs to.
type Competition struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code,omitempty"`
	Type   string `json:"type,omitempty"`
	Emblem string `json:"emblem,omitempty"`
}

// Area is the country/region block inside a team detail.
type Area struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag,omitempty"`
}

// Coach is a team's head coach.
type Coach struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// Player is a squad member.
type Player struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// TeamDetails is the full team profile including squad.
type TeamDetails struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	ShortName  string   `json:"short_name,omitempty"`
	TLA        string   `json:"tla,omitempty"`
	Crest      string   `json:"crest,omitempty"`
	Area       *Area    `json:"area,omitempty"`
	Founded    int      `json:"founded,omitempty"`
	ClubColors string   `json:"club_colors,omitempty"`
	Venue      string   `json:"venue,omitempty"`
	Website    string   `json:"website,omitempty"`
	Coach      *Coach   `json:"coach,omitempty"`
	Squad      []Player `json:"squad,omitempty"`
}

// MatchTeam is the home/away side of a match (camelCase wire names, passed
// through from the upstream football data provider).
type MatchTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	TLA       string `json:"tla,omitempty"`
	Crest     string `json:"crest,omitempty"`
}

// ScoreValue holds goals for one period of play.
type ScoreValue struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Score is the result block of a match. Winner is "HOME_TEAM", "AWAY_TEAM",
// "DRAW" or empty while undecided.
type Score struct {
	Winner   string      `json:"winner,omitempty"`
	Duration string      `json:"duration,omitempty"`
	FullTime *ScoreValue `json:"fullTime,omitempty"`
	HalfTime *ScoreValue `json:"halfTime,omitempty"`
}

// Match is one fixture in a team's history.
type Match struct {
	ID          int         `json:"id"`
	UTCDate     string      `json:"utcDate"`
	Status      string      `json:"status"`
	Matchday    int         `json:"matchday,omitempty"`
	Stage       string      `json:"stage,omitempty"`
	Group       string      `json:"group,omitempty"`
	LastUpdated string      `json:"lastUpdated"`
	Competition Competition `json:"competition"`
	HomeTeam    MatchTeam   `json:"homeTeam"`
	AwayTeam    MatchTeam   `json:"awayTeam"`
	Score       Score       `json:"score"`
}

// TeamsList is the league listing response.
type TeamsList struct {
	Count       int            `json:"count"`
	Filters     map[string]any `json:"filters,omitempty"`
	Competition Competition    `json:"competition"`
	Teams       []Team         `json:"teams"`
}

// MatchesList is a team's match history response.
type MatchesList struct {
	Count   int            `json:"count"`
	Filters map[string]any `json:"filters,omitempty"`
	Matches []Match        `json:"matches"`
}

// TeamStat is one entry in the founding-year rankings.
type TeamStat struct {
	Name    string `json:"nome"`
	TLA     string `json:"tla"`
	Founded int    `json:"fundacao"`
}

// DecadeCount is one bucket of the founding-decade distribution.
type DecadeCount struct {
	Decade     string  `json:"decada"`
	Count      int     `json:"quantidade"`
	Percentage float64 `json:"percentual"`
}

// Indicators is the aggregate-statistics response. Wire names are the
// backend's Portuguese keys, passed through unmodified.
type Indicators struct {
	Historical struct {
		OldestTeam   TeamStat `json:"time_mais_antigo"`
		NewestTeam   TeamStat `json:"time_mais_recente"`
		AverageYear  float64  `json:"media_ano_fundacao"`
		FoundingSpan string   `json:"periodo_fundacao"`
	} `json:"estatisticas_historicas"`
	Temporal struct {
		ByDecade       []DecadeCount `json:"por_decada"`
		CentenaryTeams int           `json:"times_centenarios"`
		ModernTeams    int           `json:"times_modernos"`
	} `json:"distribuicao_temporal"`
	Rankings struct {
		Oldest []TeamStat `json:"times_mais_antigos"`
		Newest []TeamStat `json:"times_mais_novos"`
	} `json:"rankings"`
}

// ImportResult is the response of a data-refresh trigger. The backend
// reports failures inside a 200 body via the error field.
type ImportResult struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
