package cards

import "hash/fnv"

// Contribution wall shape: half a year of weeks, one cell per day.
const (
	WallWeeks = 26
	WallDays  = 7
	MaxLevel  = 4
)

// ContributionWall returns a decorative contribution grid for username:
// weeks columns of seven days with levels 0..4. The data is not fetched
// from GitHub; it is derived from a hash of the username so the same user
// always gets the same wall.
func ContributionWall(username string, weeks int) [][]int {
	if weeks <= 0 {
		weeks = WallWeeks
	}
	h := fnv.New64a()
	h.Write([]byte(username))
	state := h.Sum64() | 1

	wall := make([][]int, weeks)
	for w := range wall {
		wall[w] = make([]int, WallDays)
		for d := range wall[w] {
			// xorshift64
			state ^= state << 13
			state ^= state >> 7
			state ^= state << 17
			wall[w][d] = int(state % (MaxLevel + 1))
		}
	}
	return wall
}

// TwitterProfile is the placeholder profile shown on a Twitter card.
type TwitterProfile struct {
	Name     string
	Username string
	Avatar   string
	Bio      string
}

const defaultTwitterAvatar = "https://abs.twimg.com/sticky/default_profile_images/default_profile_400x400.png"

var fakeTwitterProfiles = map[string]TwitterProfile{
	"stvlynn": {Name: "Steven Lynn", Bio: "Follow me on Twitter for updates.", Avatar: "/avatar.jpg"},
	"default": {Name: "Twitter User", Bio: "Twitter bio default text", Avatar: defaultTwitterAvatar},
}

// FakeTwitterProfile returns placeholder profile data for username. No
// network request is made. Unknown users get the default entry, named after
// title when one is given.
func FakeTwitterProfile(username, title string) TwitterProfile {
	p, ok := fakeTwitterProfiles[username]
	if !ok {
		p = fakeTwitterProfiles["default"]
		if title != "" {
			p.Name = title
		}
	}
	p.Username = username
	if p.Avatar == "" {
		p.Avatar = "https://unavatar.io/twitter/" + username
	}
	return p
}
