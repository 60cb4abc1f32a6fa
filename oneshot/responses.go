package oneshot

// The canned one-shot advice templates. %s is replaced with the prompt.
var adviceTemplates = []string{
	"🧞 **One-Shot Wisdom Activated!**\n\n%s\n\nBased on my instant analysis, here's what I see: This situation calls for a balanced approach that considers both your immediate needs and long-term goals. The key is to trust your instincts while gathering the right information to make an informed decision.\n\n**My recommendation:** Take one small step forward today, even if it's just research or a conversation. Progress beats perfection every time.\n\n*Generated in one shot by AI Genie*",

	"🎯 **Instant Life Guidance**\n\n%s\n\nI've processed your request through my advanced decision-making framework. The pattern I see suggests this is a pivotal moment that requires both courage and wisdom.\n\n**Core insight:** The fear you're feeling is actually excitement in disguise. Your subconscious already knows the answer - you just need permission to act on it.\n\n**Action plan:** Start with the smallest possible step that moves you toward your desired outcome. Momentum creates clarity.\n\n*One-shot analysis complete*",

	"✨ **Rapid Response Mode**\n\n%s\n\nAfter analyzing thousands of similar situations, here's what the data tells us: Most people regret the chances they didn't take more than the ones they did.\n\n**The truth:** You're more prepared than you think. The perfect moment is a myth - the right moment is now.\n\n**Next steps:** \n1. Define your minimum viable action\n2. Set a deadline (within 48 hours)\n3. Tell someone about your plan for accountability\n\n*Delivered by AI Genie in one shot*",
}
