package memory

import "github.com/hoopsight/gameplan-gateway/internal/domain/team"

// SeedTeams returns the 30 NBA franchises with their stats-API identifiers.
// Order here does not matter; the repository sorts and deduplicates.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1610612737, Name: "Atlanta Hawks"},
		{ID: 1610612738, Name: "Boston Celtics"},
		{ID: 1610612751, Name: "Brooklyn Nets"},
		{ID: 1610612766, Name: "Charlotte Hornets"},
		{ID: 1610612741, Name: "Chicago Bulls"},
		{ID: 1610612739, Name: "Cleveland Cavaliers"},
		{ID: 1610612742, Name: "Dallas Mavericks"},
		{ID: 1610612743, Name: "Denver Nuggets"},
		{ID: 1610612765, Name: "Detroit Pistons"},
		{ID: 1610612744, Name: "Golden State Warriors"},
		{ID: 1610612745, Name: "Houston Rockets"},
		{ID: 1610612754, Name: "Indiana Pacers"},
		{ID: 1610612746, Name: "LA Clippers"},
		{ID: 1610612747, Name: "Los Angeles Lakers"},
		{ID: 1610612763, Name: "Memphis Grizzlies"},
		{ID: 1610612748, Name: "Miami Heat"},
		{ID: 1610612749, Name: "Milwaukee Bucks"},
		{ID: 1610612750, Name: "Minnesota Timberwolves"},
		{ID: 1610612740, Name: "New Orleans Pelicans"},
		{ID: 1610612752, Name: "New York Knicks"},
		{ID: 1610612760, Name: "Oklahoma City Thunder"},
		{ID: 1610612753, Name: "Orlando Magic"},
		{ID: 1610612755, Name: "Philadelphia 76ers"},
		{ID: 1610612756, Name: "Phoenix Suns"},
		{ID: 1610612757, Name: "Portland Trail Blazers"},
		{ID: 1610612758, Name: "Sacramento Kings"},
		{ID: 1610612759, Name: "San Antonio Spurs"},
		{ID: 1610612761, Name: "Toronto Raptors"},
		{ID: 1610612762, Name: "Utah Jazz"},
		{ID: 1610612764, Name: "Washington Wizards"},
	}
}
