package main

// Sample is one benchmark prompt.
type Sample struct {
	Name   string
	Prompt string
}

// Samples contains quiz-generation prompts at varying sizes, roughly matching
// what the frontend sends.
var Samples = []Sample{
	{
		Name:   "tiny",
		Prompt: "Write one multiple-choice question about the water cycle with four options and mark the correct one.",
	},
	{
		Name: "short",
		Prompt: `Generate a 3-question quiz about the solar system. For each question give four options labelled A-D and indicate the correct answer on its own line.`,
	},
	{
		Name: "medium",
		Prompt: `Generate a 5-question multiple-choice quiz about European history between 1800 and 1900. Cover at least three different countries. For each question provide four plausible options labelled A-D, mark the correct answer, and add a one-sentence explanation of why it is correct. Keep the language suitable for secondary-school students.`,
	},
	{
		Name: "long",
		Prompt: `You are preparing study material for an introductory biology course. Generate a 10-question quiz covering cell structure, photosynthesis, cellular respiration, and mitosis. Mix difficulty levels: four easy, four medium, two hard. Each question needs four options labelled A-D, exactly one correct answer, and a short explanation. After the questions, include an answer key summarizing the correct letters. Avoid trick questions and avoid reusing the same distractor twice.`,
	},
}
