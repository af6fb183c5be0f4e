package store

import (
	"time"

	"clubhub-app/internal/model"
)

func seedDate(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// SeedDataset builds the content the app ships with.
func SeedDataset() Dataset {
	teams := []model.Team{
		{ID: "t1", Name: "Al Nour FC", LogoURL: "https://cdn.clubhub.app/teams/al-nour.png", City: "Amman", Coach: "Khaled Haddad", HomeStadium: "King Abdullah II Stadium", FoundedYear: 1964},
		{ID: "t2", Name: "Desert Falcons", LogoURL: "https://cdn.clubhub.app/teams/falcons.png", City: "Zarqa", Coach: "Omar Saleh", HomeStadium: "Prince Mohammed Stadium", FoundedYear: 1971},
		{ID: "t3", Name: "Harbour United", LogoURL: "https://cdn.clubhub.app/teams/harbour.png", City: "Aqaba", Coach: "Sami Nasser", HomeStadium: "Aqaba Stadium", FoundedYear: 1983},
		{ID: "t4", Name: "Northern Stars", City: "Irbid", Coach: "Yousef Tamimi", HomeStadium: "Al Hassan Stadium", FoundedYear: 1990},
	}

	players := []model.Player{
		{ID: "p1", TeamID: "t1", Name: "Ahmad Yasin", Position: "Forward", JerseyNumber: 9, Age: 26, Nationality: "Jordan", Height: 182, Weight: 76, MatchesPlayed: 24, GoalsScored: 15, Assists: 4, Bio: "Club top scorer for two seasons.", ImageURL: "https://cdn.clubhub.app/players/p1.jpg"},
		{ID: "p2", TeamID: "t1", Name: "Faris Odeh", Position: "Midfielder", JerseyNumber: 8, Age: 29, Nationality: "Jordan", Height: 176, Weight: 71, MatchesPlayed: 26, GoalsScored: 4, Assists: 11, Bio: "Captain and set-piece taker."},
		{ID: "p3", TeamID: "t1", Name: "Laith Qasem", Position: "Goalkeeper", JerseyNumber: 1, Age: 31, Nationality: "Jordan", Height: 190, Weight: 84, MatchesPlayed: 26},
		{ID: "p4", TeamID: "t2", Name: "Rami Khoury", Position: "Defender", JerseyNumber: 4, Age: 27, Nationality: "Lebanon", Height: 185, Weight: 80, MatchesPlayed: 22, GoalsScored: 2, Assists: 1},
		{ID: "p5", TeamID: "t2", Name: "Tariq Mansour", Position: "Forward", JerseyNumber: 11, Age: 23, Nationality: "Jordan", Height: 178, Weight: 72, MatchesPlayed: 20, GoalsScored: 9, Assists: 6, ImageURL: "https://cdn.clubhub.app/players/p5.jpg"},
		{ID: "p6", TeamID: "t3", Name: "Hani Barakat", Position: "Midfielder", JerseyNumber: 10, Age: 25, Nationality: "Palestine", Height: 174, Weight: 69, MatchesPlayed: 25, GoalsScored: 7, Assists: 9},
		{ID: "p7", TeamID: "t3", Name: "Zaid Hamdan", Position: "Defender", JerseyNumber: 5, Age: 30, Nationality: "Jordan", Height: 188, Weight: 83, MatchesPlayed: 24, GoalsScored: 1},
		{ID: "p8", TeamID: "t4", Name: "Majd Shami", Position: "Forward", JerseyNumber: 7, Age: 21, Nationality: "Syria", Height: 180, Weight: 73, MatchesPlayed: 14, GoalsScored: 5, Assists: 2},
	}

	matches := []model.Match{
		{
			ID: "m1", HomeTeamID: "t1", AwayTeamID: "t2", MatchDate: seedDate(2025, time.September, 12, 18, 30),
			Venue: "King Abdullah II Stadium", Status: model.MatchCompleted,
			HomeScore: model.IntPtr(2), AwayScore: model.IntPtr(1),
			Referee: "Adham Makhadmeh", Attendance: 14200, Season: "2025/2026", Competition: "Pro League", MatchDay: 1,
			IsFeatured: true, Description: "Season opener under the lights.",
			HighlightsURL: "https://video.clubhub.app/m1",
			Statistics: model.MatchStatistics{
				Possession:    model.StatPair{Home: 58, Away: 42},
				Shots:         model.StatPair{Home: 13, Away: 8},
				ShotsOnTarget: model.StatPair{Home: 6, Away: 3},
				Corners:       model.StatPair{Home: 7, Away: 2},
				Fouls:         model.StatPair{Home: 10, Away: 14},
				YellowCards:   model.StatPair{Home: 1, Away: 3},
				Offsides:      model.StatPair{Home: 2, Away: 1},
			},
			Events: []model.MatchEvent{
				{ID: "m1e1", Type: model.EventGoal, Minute: 17, Team: model.SideHome, Player: "p1", Description: "Low finish from the edge of the box"},
				{ID: "m1e2", Type: model.EventYellowCard, Minute: 33, Team: model.SideAway, Player: "p4"},
				{ID: "m1e3", Type: model.EventGoal, Minute: 61, Team: model.SideAway, Player: "p5"},
				{ID: "m1e4", Type: model.EventGoal, Minute: 84, Team: model.SideHome, Player: "p2", Description: "Free kick into the top corner"},
			},
			CoverImage: "https://cdn.clubhub.app/matches/m1/cover.jpg",
			Gallery: []model.GalleryItem{
				{ID: "m1g1", URI: "https://cdn.clubhub.app/matches/m1/1.jpg", FileName: "1.jpg", MimeType: "image/jpeg", Uploaded: true},
			},
		},
		{
			ID: "m2", HomeTeamID: "t3", AwayTeamID: "t4", MatchDate: seedDate(2025, time.September, 13, 17, 0),
			Venue: "Aqaba Stadium", Status: model.MatchCompleted,
			HomeScore: model.IntPtr(0), AwayScore: model.IntPtr(0),
			Season: "2025/2026", Competition: "Pro League", MatchDay: 1, Attendance: 6100,
			Statistics: model.MatchStatistics{
				Possession: model.StatPair{Home: 47, Away: 53},
				Shots:      model.StatPair{Home: 6, Away: 9},
			},
		},
		{
			ID: "m3", HomeTeamID: "t2", AwayTeamID: "t3", MatchDate: seedDate(2025, time.September, 20, 18, 0),
			Venue: "Prince Mohammed Stadium", Status: model.MatchCompleted,
			HomeScore: model.IntPtr(1), AwayScore: model.IntPtr(3),
			Season: "2025/2026", Competition: "Pro League", MatchDay: 2,
			Statistics: model.MatchStatistics{Possession: model.StatPair{Home: 51, Away: 49}},
			Events: []model.MatchEvent{
				{ID: "m3e1", Type: model.EventGoal, Minute: 9, Team: model.SideAway, Player: "p6"},
				{ID: "m3e2", Type: model.EventPenalty, Minute: 40, Team: model.SideHome, Player: "p5"},
				{ID: "m3e3", Type: model.EventGoal, Minute: 70, Team: model.SideAway, Player: "p7"},
				{ID: "m3e4", Type: model.EventOwnGoal, Minute: 89, Team: model.SideHome, Player: "p4"},
			},
		},
		{
			ID: "m4", HomeTeamID: "t4", AwayTeamID: "t1", MatchDate: seedDate(2025, time.September, 27, 19, 0),
			Venue: "Al Hassan Stadium", Status: model.MatchPostponed,
			Season: "2025/2026", Competition: "Pro League", MatchDay: 3,
			Description: "Postponed due to weather.",
			Statistics:  model.DefaultStatistics(),
		},
		{
			ID: "m5", HomeTeamID: "t1", AwayTeamID: "t3", MatchDate: seedDate(2026, time.November, 2, 18, 30),
			Venue: "King Abdullah II Stadium", Status: model.MatchScheduled,
			Season: "2026/2027", Competition: "Jordan Cup", MatchDay: 1, IsFeatured: true,
			Statistics: model.DefaultStatistics(),
		},
	}

	news := []model.NewsArticle{
		{
			ID: "n1", Title: "Late free kick seals opening win", Author: "Media Office",
			Content:  "<p>Faris Odeh curled in a late free kick as Al Nour beat Desert Falcons <strong>2-1</strong>.</p>",
			Excerpt:  "Captain settles the season opener.",
			Category: "Match Report", Tags: "pro league, al nour, matchday 1", Status: model.NewsPublished,
			PublishDate: model.TimePtr(seedDate(2025, time.September, 12, 21, 0)), IsFeatured: true,
			SEOTitle: "Al Nour 2-1 Desert Falcons", SEODescription: "Match report from the Pro League opener.",
			ImageURL: "https://cdn.clubhub.app/news/n1.jpg", RelatedArticles: []string{"n2"},
		},
		{
			ID: "n2", Title: "Yasin extends contract until 2028", Author: "Media Office",
			Content:  "<p>Ahmad Yasin has signed a new deal.</p>",
			Category: "Club News", Tags: "transfers, contracts", Status: model.NewsPublished,
			PublishDate: model.TimePtr(seedDate(2025, time.August, 30, 10, 0)),
		},
		{
			ID: "n3", Title: "Cup draw: home tie against Harbour United", Author: "Rana Aziz",
			Content:  "<p>The first round of the Jordan Cup brings Harbour United to Amman.</p>",
			Category: "Club News", Tags: "jordan cup", Status: model.NewsScheduled, IsBreakingNews: true,
			PublishDate: model.TimePtr(seedDate(2026, time.October, 30, 9, 0)),
		},
		{
			ID: "n4", Title: "Academy trials open", Author: "Academy",
			Content:  "<p>Trials for the U15 and U17 squads.</p>",
			Category: "Academy", Status: model.NewsDraft,
		},
	}

	categories := []model.ShopCategory{
		{ID: "c1", Name: "Kits"},
		{ID: "c2", Name: "Training"},
		{ID: "c3", Name: "Accessories"},
	}

	products := []model.ShopProduct{
		{
			ID: "s1", Name: "Home Shirt 25/26", Description: "Official home shirt.", Price: 45, DiscountPrice: model.FloatPtr(39),
			CategoryID: "c1", StockQuantity: 120, Status: model.ProductActive, IsFeatured: true, Weight: model.FloatPtr(0.25),
			SKU: "KIT-H-2526", Tags: "kit, home", ImageURL: "https://cdn.clubhub.app/shop/s1.jpg",
			HasVariants:    true,
			VariantOptions: model.VariantOptions{Size: []string{"M", "L"}, Color: []string{"Green"}},
			Variants: []model.Variant{
				{ID: "s1v1", Size: "M", Color: "Green", Price: 45, Stock: 60, SKU: "KIT-H-2526-M-GREEN"},
				{ID: "s1v2", Size: "L", Color: "Green", Price: 45, Stock: 60, SKU: "KIT-H-2526-L-GREEN"},
			},
		},
		{
			ID: "s2", Name: "Training Top", Description: "Lightweight training top.", Price: 30,
			CategoryID: "c2", StockQuantity: 0, Status: model.ProductOutOfStock, SKU: "TRN-TOP",
		},
		{
			ID: "s3", Name: "Club Scarf", Description: "Knitted scarf in club colours.", Price: 12,
			CategoryID: "c3", StockQuantity: 300, Status: model.ProductActive, SKU: "ACC-SCARF",
			HasPromotion:       true,
			PromotionStartDate: model.TimePtr(seedDate(2025, time.December, 1, 0, 0)),
			PromotionEndDate:   model.TimePtr(seedDate(2025, time.December, 31, 23, 59)),
		},
		{
			ID: "s4", Name: "Away Shirt 25/26", Description: "Official away shirt.", Price: 45,
			CategoryID: "c1", StockQuantity: 0, Status: model.ProductDraft, SKU: "KIT-A-2526",
		},
	}

	return Dataset{
		Teams:      teams,
		Players:    players,
		Matches:    matches,
		News:       news,
		Products:   products,
		Categories: categories,
	}
}
