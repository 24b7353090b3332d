package quiz

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Topic: "goroutines", Level: LevelMedium, NumQuestions: 5}, false},
		{"empty topic", Config{Topic: "   ", Level: LevelEasy, NumQuestions: 5}, true},
		{"zero questions", Config{Topic: "x", Level: LevelEasy, NumQuestions: 0}, true},
		{"too many questions", Config{Topic: "x", Level: LevelEasy, NumQuestions: MaxQuestions + 1}, true},
		{"at max", Config{Topic: "x", Level: LevelHard, NumQuestions: MaxQuestions}, false},
		{"at min", Config{Topic: "x", Level: LevelEasy, NumQuestions: MinQuestions}, false},
		{"unknown level", Config{Topic: "x", Level: "expert", NumQuestions: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuestions(t *testing.T) {
	good := Question{Text: "q", Options: []string{"a", "b", "c"}, CorrectAnswer: 1}

	tests := []struct {
		name    string
		qs      []Question
		wantErr bool
	}{
		{"valid", []Question{good}, false},
		{"empty set", nil, true},
		{"blank text", []Question{{Text: " ", Options: []string{"a", "b"}, CorrectAnswer: 0}}, true},
		{"one option", []Question{{Text: "q", Options: []string{"a"}, CorrectAnswer: 0}}, true},
		{"correct index too high", []Question{{Text: "q", Options: []string{"a", "b"}, CorrectAnswer: 2}}, true},
		{"correct index negative", []Question{{Text: "q", Options: []string{"a", "b"}, CorrectAnswer: -1}}, true},
		{"bad question among good", []Question{good, {Text: "q", Options: nil, CorrectAnswer: 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuestions(tt.qs)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuestions() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
