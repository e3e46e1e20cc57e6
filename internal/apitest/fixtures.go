package apitest

// Fixture payloads mirroring the league data shapes the real backend
// returns. Teams use snake_case keys; matches use the upstream provider's
// camelCase keys, passed through unmodified.

var fixtureTeams = []map[string]any{
	{"id": 1776, "name": "São Paulo FC", "short_name": "São Paulo", "tla": "SAO", "founded": 1930},
	{"id": 1783, "name": "CR Flamengo", "short_name": "Flamengo", "tla": "FLA", "founded": 1895},
	{"id": 1777, "name": "SE Palmeiras", "short_name": "Palmeiras", "tla": "PAL", "founded": 1914},
}

var fixtureTeamDetails = map[int]map[string]any{
	1783: {
		"id":          1783,
		"name":        "CR Flamengo",
		"short_name":  "Flamengo",
		"tla":         "FLA",
		"area":        map[string]any{"name": "Brazil", "code": "BRA"},
		"founded":     1895,
		"club_colors": "Red / Black",
		"venue":       "Estádio do Maracanã",
		"coach": map[string]any{
			"id": 11, "firstName": "Filipe", "lastName": "Luís", "name": "Filipe Luís",
			"nationality": "Brazil",
		},
		"squad": []map[string]any{
			{"id": 101, "name": "Agustín Rossi", "position": "Goalkeeper", "nationality": "Argentina"},
			{"id": 102, "name": "Giorgian de Arrascaeta", "position": "Midfield", "nationality": "Uruguay"},
		},
	},
}

var fixtureMatches = map[int][]map[string]any{
	1783: {
		{
			"id": 5001, "utcDate": "2025-04-20T19:00:00Z", "status": "FINISHED",
			"matchday": 5, "lastUpdated": "2025-04-21T00:00:00Z",
			"competition": map[string]any{"id": 2013, "name": "Campeonato Brasileiro Série A", "code": "BSA"},
			"homeTeam":    map[string]any{"id": 1783, "name": "CR Flamengo", "tla": "FLA"},
			"awayTeam":    map[string]any{"id": 1776, "name": "São Paulo FC", "tla": "SAO"},
			"score": map[string]any{
				"winner": "HOME_TEAM", "duration": "REGULAR",
				"fullTime": map[string]any{"home": 2, "away": 0},
				"halfTime": map[string]any{"home": 1, "away": 0},
			},
		},
		{
			"id": 5002, "utcDate": "2025-04-27T21:30:00Z", "status": "FINISHED",
			"matchday": 6, "lastUpdated": "2025-04-28T00:00:00Z",
			"competition": map[string]any{"id": 2013, "name": "Campeonato Brasileiro Série A", "code": "BSA"},
			"homeTeam":    map[string]any{"id": 1777, "name": "SE Palmeiras", "tla": "PAL"},
			"awayTeam":    map[string]any{"id": 1783, "name": "CR Flamengo", "tla": "FLA"},
			"score": map[string]any{
				"winner": "DRAW", "duration": "REGULAR",
				"fullTime": map[string]any{"home": 1, "away": 1},
			},
		},
		{
			"id": 5003, "utcDate": "2025-05-04T19:00:00Z", "status": "SCHEDULED",
			"matchday": 7, "lastUpdated": "2025-05-01T00:00:00Z",
			"competition": map[string]any{"id": 2013, "name": "Campeonato Brasileiro Série A", "code": "BSA"},
			"homeTeam":    map[string]any{"id": 1783, "name": "CR Flamengo", "tla": "FLA"},
			"awayTeam":    map[string]any{"id": 1777, "name": "SE Palmeiras", "tla": "PAL"},
			"score":       map[string]any{},
		},
	},
}

var fixtureIndicators = map[string]any{
	"estatisticas_historicas": map[string]any{
		"time_mais_antigo":   map[string]any{"nome": "CR Flamengo", "tla": "FLA", "fundacao": 1895},
		"time_mais_recente":  map[string]any{"nome": "São Paulo FC", "tla": "SAO", "fundacao": 1930},
		"media_ano_fundacao": 1913.0,
		"periodo_fundacao":   "1895 - 1930",
	},
	"distribuicao_temporal": map[string]any{
		"por_decada": []map[string]any{
			{"decada": "1890s", "quantidade": 1, "percentual": 33.3},
			{"decada": "1910s", "quantidade": 1, "percentual": 33.3},
			{"decada": "1930s", "quantidade": 1, "percentual": 33.3},
		},
		"times_centenarios": 3,
		"times_modernos":    0,
	},
	"rankings": map[string]any{
		"times_mais_antigos": []map[string]any{
			{"nome": "CR Flamengo", "tla": "FLA", "fundacao": 1895},
			{"nome": "SE Palmeiras", "tla": "PAL", "fundacao": 1914},
		},
		"times_mais_novos": []map[string]any{
			{"nome": "São Paulo FC", "tla": "SAO", "fundacao": 1930},
			{"nome": "SE Palmeiras", "tla": "PAL", "fundacao": 1914},
		},
	},
}
