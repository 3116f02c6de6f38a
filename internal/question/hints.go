package question

import (
	"fmt"
	"strings"
)

// GenerateHints synthesizes a gentle/medium/strong hint triple from the
// question content alone. It is the offline fallback used when no
// AI-generated hints are attached by the content layer. Pure: same
// question, same hints.
func GenerateHints(q *Question) []HintSpec {
	gentle, medium, strong := hintTexts(q)
	return []HintSpec{
		{ID: q.ID + "-h1", Tier: TierGentle, Text: gentle, Cost: TierGentle.Cost()},
		{ID: q.ID + "-h2", Tier: TierMedium, Text: medium, Cost: TierMedium.Cost()},
		{ID: q.ID + "-h3", Tier: TierStrong, Text: strong, Cost: TierStrong.Cost()},
	}
}

func hintTexts(q *Question) (gentle, medium, strong string) {
	key, err := ParseKey(q)
	if err != nil {
		// Malformed content still gets usable generic hints.
		return "Read the prompt again slowly.",
			"Rule out the options you are sure are wrong.",
			"Take your best guess — you can retry."
	}

	switch q.Variant {
	case MultipleChoice:
		first := firstAccepted(key.Units[0])
		gentle = "One of the options fits much better than the rest."
		medium = fmt.Sprintf("The answer starts with %q.", initial(first))
		strong = fmt.Sprintf("The answer has %d letters.", len([]rune(first)))

	case FillBlank:
		gentle = fmt.Sprintf("There are %d blanks to fill — read the words around each one.", len(key.Units))
		firsts := make([]string, len(key.Units))
		for i, u := range key.Units {
			firsts[i] = initial(firstAccepted(u))
		}
		medium = fmt.Sprintf("The blanks start with: %s.", strings.Join(firsts, ", "))
		strong = fmt.Sprintf("The first blank is %q.", firstAccepted(key.Units[0]))

	case DragDrop:
		gentle = "Start with the pairing you are most sure about."
		medium = fmt.Sprintf("There are %d targets and every item belongs somewhere.", len(key.Units))
		u := key.Units[0]
		strong = fmt.Sprintf("%q goes with %q.", firstAccepted(u), u.Target)

	case TextInput:
		answer := key.Answers[0]
		words := strings.Fields(answer)
		gentle = fmt.Sprintf("The expected answer is about %d words long.", len(words))
		medium = fmt.Sprintf("It begins with %q.", words[0])
		if len(words) > 1 {
			strong = fmt.Sprintf("It begins with %q.", strings.Join(words[:(len(words)+1)/2], " "))
		} else {
			strong = fmt.Sprintf("It starts with %q.", initial(answer))
		}

	case ImageBased:
		if key.Mode == RegionMulti {
			gentle = fmt.Sprintf("You are looking for %d areas of the picture.", len(key.Units))
			medium = "Selecting extra areas counts against you — pick only what you are sure of."
			strong = fmt.Sprintf("One of the areas is %q.", key.Units[0].Target)
		} else {
			gentle = "Only one area of the picture is right."
			medium = "Focus on what the prompt actually names, not the biggest shape."
			strong = fmt.Sprintf("Look at %q.", firstAccepted(key.Units[0]))
		}
	}
	return gentle, medium, strong
}

// firstAccepted returns the lexically smallest accepted value, so hint text
// is deterministic regardless of map iteration order.
func firstAccepted(u Unit) string {
	first := ""
	for v := range u.Accept {
		if first == "" || v < first {
			first = v
		}
	}
	return first
}

func initial(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return ""
	}
	return string(r[0])
}
