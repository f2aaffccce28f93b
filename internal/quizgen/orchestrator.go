package quizgen

// DefaultBatchSize bounds how many sentences each synthesizer pass sees
// at once, keeping tag-cache growth and per-batch latency in check on
// large inputs.
const DefaultBatchSize = 50

// Orchestrator runs the requested synthesizers over sentence batches.
type Orchestrator struct {
	session   *Session
	batchSize int
}

// NewOrchestrator wraps a session. batchSize <= 0 uses the default.
func NewOrchestrator(session *Session, batchSize int) *Orchestrator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Orchestrator{session: session, batchSize: batchSize}
}

// Generate partitions sentences into contiguous batches and runs every
// requested synthesizer over each batch, concatenating results in batch
// order. Within a batch the synthesizers always run in canonical type
// order (MCQ, fill, true/false, short answer) no matter how the request
// listed them, so the shared RNG sees one fixed draw sequence and the
// output order does not depend on request spelling. Eligibility filters
// decide which sentences produce items, so batch boundaries only affect
// output order, never consideration.
//
// If a full pass yields nothing, one retry runs with all four types
// regardless of the request; callers depend on "never silently empty".
func (o *Orchestrator) Generate(sentences []string, types []Type) []QuestionItem {
	if len(types) == 0 {
		types = AllTypes
	}

	items := o.generatePass(sentences, types)
	if len(items) == 0 {
		o.session.log.Warn("no items from requested types, retrying with all types", "requested", types)
		items = o.generatePass(sentences, AllTypes)
	}
	return items
}

func (o *Orchestrator) generatePass(sentences []string, types []Type) []QuestionItem {
	requested := make(map[Type]struct{}, len(types))
	for _, t := range types {
		requested[t] = struct{}{}
	}

	var items []QuestionItem

	total := len(sentences)
	batches := (total + o.batchSize - 1) / o.batchSize
	for b := 0; b < batches; b++ {
		start := b * o.batchSize
		end := min(start+o.batchSize, total)
		batch := sentences[start:end]

		for _, t := range AllTypes {
			if _, ok := requested[t]; !ok {
				continue
			}
			switch t {
			case TypeMCQ:
				items = append(items, o.session.GenerateMCQ(batch)...)
			case TypeFillBlank:
				items = append(items, o.session.GenerateFill(batch)...)
			case TypeTrueFalse:
				items = append(items, o.session.GenerateTrueFalse(batch)...)
			case TypeShortAnswer:
				items = append(items, o.session.GenerateShortAnswer(batch)...)
			}
		}
	}
	return items
}

// RandomizeWithinTypes shuffles each type group with the session RNG and
// returns the groups concatenated in canonical type order. Item order
// within a type becomes unpredictable; the section structure does not.
func (o *Orchestrator) RandomizeWithinTypes(items []QuestionItem) []QuestionItem {
	groups := make(map[Type][]QuestionItem, len(AllTypes))
	for _, item := range items {
		groups[item.Type] = append(groups[item.Type], item)
	}

	out := make([]QuestionItem, 0, len(items))
	for _, t := range AllTypes {
		group := groups[t]
		o.session.rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		out = append(out, group...)
	}
	return out
}
