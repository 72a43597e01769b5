package content

func intp(v int) *int { return &v }

func boolp(v bool) *bool { return &v }

// DemoUser is the identity behind every authenticated session. Uploaded
// content is owned by this user.
func DemoUser() User {
	return User{
		ID:          "u1",
		Username:    "Demo User",
		Handle:      "demouser",
		Avatar:      "https://picsum.photos/100/100?random=user",
		Followers:   120,
		IsFollowing: boolp(false),
	}
}

// Seed returns the initial catalog, newest-first. Fixed at process start.
func Seed() []Content {
	return []Content{
		{
			ID:          "s1",
			Kind:        KindShort,
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
			Thumbnail:   "https://picsum.photos/400/800?random=1",
			Description: "Amazing sunset vibe! #nature #chill",
			User:        User{ID: "u2", Username: "NatureLover", Handle: "nature_1", Avatar: "https://picsum.photos/50/50?r=2", Followers: 500},
			Likes:       1200,
			Dislikes:    10,
			Comments:    []Comment{},
		},
		{
			ID:          "p1",
			Kind:        KindPost,
			URL:         "https://picsum.photos/800/600?random=3",
			Description: "Just finished my new setup! What do you think?",
			User:        User{ID: "u3", Username: "TechGuru", Handle: "techie", Avatar: "https://picsum.photos/50/50?r=4", Followers: 2000},
			Likes:       450,
			Dislikes:    2,
			Comments:    []Comment{{ID: "c1", Username: "fan1", Text: "Looks awesome!"}},
		},
		{
			ID:          "v1",
			Kind:        KindVideo,
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Title:       "Big Buck Bunny Official Trailer",
			Description: "The classic open movie project.",
			Thumbnail:   "https://picsum.photos/800/450?random=5",
			User:        User{ID: "u4", Username: "MovieStudio", Handle: "studio", Avatar: "https://picsum.photos/50/50?r=6", Followers: 10000},
			Likes:       5000,
			Dislikes:    100,
			Views:       intp(25000),
			Comments:    []Comment{},
		},
		{
			ID:          "s2",
			Kind:        KindShort,
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Thumbnail:   "https://picsum.photos/400/800?random=7",
			Description: "Funny cat moment 🐱",
			User:        User{ID: "u5", Username: "CatMemes", Handle: "meow", Avatar: "https://picsum.photos/50/50?r=8", Followers: 300},
			Likes:       800,
			Dislikes:    5,
			Comments:    []Comment{},
		},
	}
}
