package usecase

import (
	"context"
	"fmt"
	"strings"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/pets"
	"conversational-assistant/pkg/petfinder"
)

// Log prefixes
const (
	LogPrefixSearch = "internal.pets.Search"
)

const msgNoResults = "No adoptable animals matched that search. Try a broader area or a different species."

// Search finds adoptable animals for the query and formats them as a
// chat reply. A remembered location from earlier weather or pet
// questions fills in when the message names none.
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input pets.SearchInput) (pets.Reply, error) {
	var sessionLocation string
	if state, ok := uc.sessions.Get(sc.UserID); ok {
		sessionLocation = state.LastLocation
	}

	params := buildSearchParams(input.Text, sessionLocation)
	uc.l.Infof(ctx, "%s: user=%s type=%q location=%q", LogPrefixSearch, sc.UserID, params.Type, params.Location)

	resp, err := uc.client.SearchAnimals(ctx, params)
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider call failed: %v", LogPrefixSearch, err)
		return pets.Reply{}, err
	}

	if params.Location != "" {
		uc.sessions.RememberLocation(sc.UserID, params.Location)
	}

	if len(resp.Animals) == 0 {
		return pets.Reply{Text: msgNoResults}, nil
	}
	return pets.Reply{Text: formatAnimals(resp.Animals, params)}, nil
}

func formatAnimals(animals []petfinder.Animal, params petfinder.SearchParams) string {
	var b strings.Builder
	if params.Location != "" {
		fmt.Fprintf(&b, "🐾 *Adoptable near %s*\n", params.Location)
	} else {
		b.WriteString("🐾 *Adoptable animals*\n")
	}

	for _, a := range animals {
		breed := a.Breeds.Primary
		if a.Breeds.Mixed && breed != "" {
			breed += " mix"
		}
		fmt.Fprintf(&b, "• *%s* – %s %s %s", a.Name, strings.ToLower(a.Age), strings.ToLower(a.Gender), breed)
		if city := a.Contact.Address.City; city != "" {
			fmt.Fprintf(&b, " (%s, %s)", city, a.Contact.Address.State)
		}
		if a.URL != "" {
			fmt.Fprintf(&b, "\n  %s", a.URL)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
