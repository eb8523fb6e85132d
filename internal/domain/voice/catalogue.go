package voice

const (
	americanFemale = "moss_audio_fdad4786-ab84-11f0-a816-023f15327f7a"
	americanMale   = "moss_audio_a59cd561-ab87-11f0-a74c-2a7a0b4baedc"
	nigerianFemale = "moss_audio_141d8c4c-a6f8-11f0-84c1-0ec6fa858d82"
	nigerianMale   = "moss_audio_4e6eb029-ab89-11f0-a74c-2a7a0b4baedc"
)

var catalogue = [...]Spec{
	{
		Name:            "American Female - Professional",
		VoiceID:         americanFemale,
		Characteristics: "American Female, Neutral",
		Speaker:         "American Female",
		Variation:       "Professional",
		Flag:            "🇺🇸",
		Text:            "Welcome to our voice showcase! I am an American female voice with a professional, neutral tone. I excel at business communications, customer service, and educational content. My clear pronunciation and warm yet authoritative delivery make me perfect for presentations, training materials, and professional announcements.",
		Settings:        Settings{Speed: 1.0, Pitch: 0, Emotion: "neutral"},
	},
	{
		Name:            "Marcus - American Male - Authoritative",
		VoiceID:         americanMale,
		Characteristics: "American Male, Neutral",
		Speaker:         "Marcus American Male",
		Variation:       "Authoritative",
		Flag:            "🇺🇸",
		Text:            "Hello there! I am Marcus, an American male voice with a confident, neutral tone. I bring clarity and authority to every word I speak, making me ideal for corporate communications, technical documentation, and leadership presentations. My voice is professional yet approachable, perfect for training, announcements, and executive content.",
		Settings:        Settings{Speed: 1.0, Pitch: 0, Emotion: "neutral"},
	},
	{
		Name:            "Ezinne - Nigerian Female - Professional",
		VoiceID:         nigerianFemale,
		Characteristics: "Nigerian Female, Neutral",
		Speaker:         "Ezinne Nigerian Female",
		Variation:       "Professional",
		Flag:            "🇳🇬",
		Text:            "Hello! I am Ezinne, a Nigerian female voice with a neutral, professional tone. I bring the warmth and authenticity of Nigerian culture to every word I speak. My clear pronunciation and confident delivery make me perfect for business communications, educational content, and professional presentations in Nigeria and beyond.",
		Settings:        Settings{Speed: 1.0, Pitch: 0, Emotion: "neutral"},
	},
	{
		Name:            "Odia - Nigerian Male - Authoritative",
		VoiceID:         nigerianMale,
		Characteristics: "Nigerian Male, Neutral",
		Speaker:         "Odia Nigerian Male",
		Variation:       "Authoritative",
		Flag:            "🇳🇬",
		Text:            "Greetings! I am Odia, a Nigerian male voice with a strong, authoritative tone. I represent the strength and confidence of Nigerian men in business and leadership. My clear Nigerian accent and professional delivery make me ideal for corporate communications, technical documentation, and executive presentations across Africa and internationally.",
		Settings:        Settings{Speed: 1.0, Pitch: 0, Emotion: "neutral"},
	},
	{
		Name:            "American Female - Warm & Friendly",
		VoiceID:         americanFemale,
		Characteristics: "American Female, Neutral",
		Speaker:         "American Female",
		Variation:       "Warm & Friendly",
		Flag:            "🇺🇸",
		Text:            "Hi everyone! I am the same American female voice, but now speaking with a warmer, more friendly tone. Notice how I can adapt my delivery while maintaining my professional quality. I am perfect for customer service, hospitality, and any situation where you need a welcoming, approachable voice.",
		Settings:        Settings{Speed: 1.1, Pitch: 1, Emotion: "neutral"},
	},
	{
		Name:            "Marcus - American Male - Technical",
		VoiceID:         americanMale,
		Characteristics: "American Male, Neutral",
		Speaker:         "Marcus American Male",
		Variation:       "Technical",
		Flag:            "🇺🇸",
		Text:            "Technical documentation requires precision and clarity. I am Marcus, delivering complex information with accuracy and professionalism. My neutral American accent ensures universal understanding, while my authoritative tone commands attention. Perfect for software tutorials, technical training, and professional documentation.",
		Settings:        Settings{Speed: 0.9, Pitch: -1, Emotion: "neutral"},
	},
	{
		Name:            "Ezinne - Nigerian Female - Conversational",
		VoiceID:         nigerianFemale,
		Characteristics: "Nigerian Female, Neutral",
		Speaker:         "Ezinne Nigerian Female",
		Variation:       "Conversational",
		Flag:            "🇳🇬",
		Text:            "Hey there! I am Ezinne, the same Nigerian female voice, but now speaking in a more conversational style. I can adapt to different contexts while maintaining my professional quality. Whether it is business meetings, casual presentations, or friendly announcements, I bring the right tone for every situation.",
		Settings:        Settings{Speed: 1.2, Pitch: 0, Emotion: "neutral"},
	},
	{
		Name:            "Odia - Nigerian Male - Narrative",
		VoiceID:         nigerianMale,
		Characteristics: "Nigerian Male, Neutral",
		Speaker:         "Odia Nigerian Male",
		Variation:       "Narrative",
		Flag:            "🇳🇬",
		Text:            "Storytelling requires a voice that can capture attention and maintain engagement. I am Odia, bringing depth and character to every narrative. My Nigerian accent provides authenticity, while my neutral tone ensures universal appeal. Perfect for audiobooks, documentaries, and any content that needs a compelling narrator.",
		Settings:        Settings{Speed: 0.8, Pitch: 0, Emotion: "neutral"},
	},
}

// Catalogue returns a copy of the fixed, ordered showcase voice table.
func Catalogue() []Spec {
	out := make([]Spec, len(catalogue))
	copy(out, catalogue[:])
	return out
}
