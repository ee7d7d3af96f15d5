package prosody

import "strings"

// Tone is an emotional register detected in a reply. The string values
// are a contract with the frontend: each tone maps 1:1 to an avatar
// animation clip, so they must not change.
type Tone string

const (
	ToneExcited     Tone = "excited"
	ToneNeutral     Tone = "neutral"
	ToneHappy       Tone = "happy"
	ToneSympathetic Tone = "sympathetic"
	ToneBummed      Tone = "bummed"
	ToneReassuring  Tone = "reassuring"
	ToneEncouraging Tone = "encouraging"
	TonePlayful     Tone = "playful"
	ToneIntrigued   Tone = "intrigued"
	ToneCaution     Tone = "caution"
)

func (t Tone) String() string {
	return string(t)
}

// keywordRule associates a tone with the lowercase phrases that
// trigger it. Rules are evaluated in slice order, first match wins,
// so earlier tones fully shadow later ones.
type keywordRule struct {
	tone    Tone
	phrases []string
}

// Straight and curly apostrophe variants are listed as separate
// literals on purpose; the lists were tuned against real model output
// and normalizing would change what they match.
var toneRules = []keywordRule{
	{
		tone: ToneSympathetic,
		phrases: []string{
			"i'm sorry", "i am sorry", "that sounds really hard",
			"that sounds tough", "i know this is hard",
			"i know this is tough", "i can see why", "i understand this is",
			"it makes sense you feel", "i get why you feel",
		},
	},
	{
		tone: ToneBummed,
		phrases: []string{
			"that really sucks", "that sucks", "that's rough", "that’s rough",
			"that’s not fair", "that is not fair",
		},
	},
	{
		tone: ToneReassuring,
		phrases: []string{
			"don't worry", "do not worry",
			"you're not alone", "you are not alone",
			"it's okay to", "it’s okay to",
			"it's ok to", "it’s ok to",
			"it's understandable", "it’s understandable",
			"you're doing your best", "you are doing your best",
		},
	},
	{
		tone: ToneEncouraging,
		phrases: []string{
			"you've got this", "you got this",
			"i believe in you", "i’m proud of you", "i am proud of you",
			"keep going", "keep at it",
			"this is a great step", "this is a good step",
			"you’re doing great", "you're doing great",
		},
	},
	{
		tone: ToneHappy,
		phrases: []string{
			"that's great", "that’s great",
			"that's awesome", "that’s awesome",
			"that's fantastic", "that’s fantastic",
			"i'm glad", "i am glad",
			"i'm happy for you", "i am happy for you",
			"congratulations", "congrats",
		},
	},
	{
		tone: TonePlayful,
		phrases: []string{
			"haha", "lol", "just kidding",
			"couldn’t resist", "couldn't resist",
			"little bit cheeky", "let's have some fun", "let’s have some fun",
		},
	},
	{
		tone: ToneIntrigued,
		phrases: []string{
			"i'm curious", "i am curious",
			"interesting question", "that's interesting", "that’s interesting",
			"let's unpack", "let’s unpack",
			"i wonder", "makes me wonder",
		},
	},
	{
		tone: ToneCaution,
		phrases: []string{
			"be careful", "you’ll want to be careful", "you will want to be careful",
			"this might be risky", "this could be risky",
			"i’d strongly recommend", "i would strongly recommend",
			"i’d avoid", "i would avoid",
			"it’s important to", "it's important to",
		},
	},
	{
		tone: ToneExcited,
		phrases: []string{
			"this is huge", "i'm so excited", "i am so excited",
			"this is amazing", "i'm really excited", "i am really excited",
			"this is incredible", "that’s incredible", "that's incredible",
			"this is insane", "that's insane", "that’s insane",
		},
	},
}

// Detect classifies the emotional tone of a reply using keyword
// heuristics. It never fails; empty input and text matching no rule
// both return ToneNeutral.
func Detect(text string) Tone {
	if text == "" {
		return ToneNeutral
	}

	t := strings.ToLower(text)

	for _, rule := range toneRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(t, phrase) {
				return rule.tone
			}
		}
	}

	return ToneNeutral
}
