package advisor

// Canned genie replies for the conversational interface.
var chatReplies = []string{
	"✨ I sense great wisdom in your question. Based on my understanding of life's patterns, here's what I see: This situation presents both challenge and opportunity. Consider taking small, deliberate steps forward while staying true to your core values.",
	"🔮 The cosmic energies suggest this is a moment for bold action! Your intuition is trying to tell you something important. Trust the process and remember that growth often comes disguised as discomfort.",
	"🌟 I've analyzed thousands of similar situations, and here's what consistently leads to fulfillment: Focus on what you can control, embrace uncertainty as a teacher, and remember that every expert was once a beginner.",
	"💫 Your path is becoming clearer to me. This challenge is actually preparing you for something greater. Consider this: What would you do if you knew you couldn't fail? That's your answer.",
	"⚡ Drawing from the collective wisdom of countless life experiences, I see that you're at a crossroads that many have faced. The key is to align your actions with your deeper purpose and values.",
	"🎯 The universe has a funny way of presenting us with exactly what we need to grow. This situation is your invitation to step into a more authentic version of yourself. What would your future self advise you to do?",
}

// The decision helper's fixed evidence pool and verdicts.
var chaosPosts = []Post{
	{
		ID:        "1",
		Title:     "Life is too short to worry about what others think",
		Content:   "Just went bungee jumping at 60. Best decision ever!",
		Subreddit: "r/GetMotivated",
		Upvotes:   15420,
		URL:       "https://reddit.com/r/getmotivated/example1",
	},
	{
		ID:        "2",
		Title:     "Quit my job to travel the world",
		Content:   "No regrets, seeing amazing places and meeting incredible people.",
		Subreddit: "r/solotravel",
		Upvotes:   8934,
		URL:       "https://reddit.com/r/solotravel/example2",
	},
	{
		ID:        "3",
		Title:     "Started learning guitar at 45",
		Content:   "Never too late to pick up a new hobby. Playing my first song now!",
		Subreddit: "r/Guitar",
		Upvotes:   12567,
		URL:       "https://reddit.com/r/guitar/example3",
	},
	{
		ID:        "4",
		Title:     "Adopted a rescue dog and it changed my life",
		Content:   "The companionship and joy they bring is incredible.",
		Subreddit: "r/dogs",
		Upvotes:   23891,
		URL:       "https://reddit.com/r/dogs/example4",
	},
}

var chaosSuggestions = []string{
	"Based on Reddit's wisdom, it seems like taking bold action leads to great stories. The community suggests embracing change and new experiences!",
	"The Reddit hive mind is saying: life's too short for overthinking. Multiple posts emphasize the importance of just going for it!",
	"According to the collective Reddit experience, trying new things (even when scary) often leads to the best memories and personal growth.",
	"The Reddit consensus appears to be: regret from not trying something is worse than failing at it. The community encourages taking the leap!",
}
