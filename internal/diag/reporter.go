package diag

// Reporter is the contract detectors emit through.
type Reporter interface {
	Issue(iss Issue)
	Recommend(rec Recommendation)
}

// BagReporter appends issues to a Bag and recommendations to a slice.
type BagReporter struct {
	Bag  *Bag
	Recs *[]Recommendation
}

func (r BagReporter) Issue(iss Issue) {
	if r.Bag != nil {
		r.Bag.Add(iss)
	}
}

func (r BagReporter) Recommend(rec Recommendation) {
	if r.Recs != nil {
		*r.Recs = append(*r.Recs, rec)
	}
}
