package votes

import (
	"slices"
	"sort"

	"votebot/clients"
	"votebot/models"
)

// ComputeTally ranks the reactions on a closed poll's prompt. A reaction
// counts only when its name is one of the poll's choices and its voter set
// contains the bot itself - the bot's seed marks the entry as a legitimate
// vote option rather than unrelated noise. The seed is subtracted from every
// count and never reported as a voter. Entries are ordered by descending
// adjusted count; equal counts keep the seed order.
func ComputeTally(
	reactions []clients.SlackItemReaction,
	choices []string,
	botUserID string,
) []models.TallyEntry {
	byName := make(map[string]clients.SlackItemReaction, len(reactions))
	for _, reaction := range reactions {
		byName[reaction.Name] = reaction
	}

	entries := make([]models.TallyEntry, 0, len(choices))
	for _, choice := range choices {
		reaction, exists := byName[reactionName(choice)]
		if !exists {
			continue
		}
		if !slices.Contains(reaction.Users, botUserID) {
			continue
		}

		voters := make([]string, 0, len(reaction.Users)-1)
		for _, user := range reaction.Users {
			if user != botUserID {
				voters = append(voters, user)
			}
		}

		entries = append(entries, models.TallyEntry{
			Name:   reaction.Name,
			Count:  len(reaction.Users) - 1,
			Voters: voters,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
