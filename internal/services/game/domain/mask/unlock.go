package mask

// Built-in unlock requirements. Any other requirement name is satisfied by
// a caller-supplied flag in Progress.Flags.
const (
	RequirementCompleteThreeClasses = "complete_three_classes"
	RequirementReachRelationship60  = "reach_relationship_60"
	RequirementRelationshipBelow20  = "relationship_below_20"
	RequirementCorruption50AllMasks = "corruption_50_all_masks"
)

const (
	requiredCompletedClasses = 3
	requiredHighAffinity     = 60
	requiredLowAffinity      = -20
	requiredOwnedCorruption  = 50
)

// Progress is the player progress unlock requirements are checked against.
type Progress struct {
	CompletedClasses int
	Relationships    map[string]int
	Flags            map[string]bool
}

// Missing returns the requirements of def that do not hold, in declaration
// order.
func (s State) Missing(def Definition, progress Progress) []string {
	var missing []string
	for _, req := range def.UnlockRequirements {
		if !s.requirementMet(req, progress) {
			missing = append(missing, req)
		}
	}
	return missing
}

// Unlock adds def when every requirement holds. It returns false with the
// unmet requirements otherwise, and false with none when already owned.
func (s *State) Unlock(def Definition, progress Progress) (bool, []string) {
	if s.Owns(def.ID) {
		return false, nil
	}
	if missing := s.Missing(def, progress); len(missing) > 0 {
		return false, missing
	}
	return s.Add(def.ID), nil
}

func (s State) requirementMet(req string, progress Progress) bool {
	switch req {
	case RequirementCompleteThreeClasses:
		return progress.CompletedClasses >= requiredCompletedClasses
	case RequirementReachRelationship60:
		for _, affinity := range progress.Relationships {
			if affinity >= requiredHighAffinity {
				return true
			}
		}
		return false
	case RequirementRelationshipBelow20:
		for _, affinity := range progress.Relationships {
			if affinity <= requiredLowAffinity {
				return true
			}
		}
		return false
	case RequirementCorruption50AllMasks:
		for _, value := range s.corruption {
			if value < requiredOwnedCorruption {
				return false
			}
		}
		return true
	default:
		return progress.Flags[req]
	}
}
