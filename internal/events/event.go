package events

// Aggregate kinds carried on outbox rows and message headers.
const (
	AggregateCandidate   = "candidate"
	AggregateInterview   = "interview"
	AggregateOfferLetter = "offer_letter"
)

// Event is a domain event the outbox can publish. Topic and Type are fixed
// per event kind; AggregateID keys the kafka message so events of one
// aggregate stay on one partition.
type Event interface {
	Topic() string
	Type() string
	Aggregate() string
	AggregateID() string
}

var topics = map[string]string{
	CandidateRejectedTopic:  CandidateRejectedType,
	InterviewScheduledTopic: InterviewScheduledType,
	OfferLetterSentTopic:    OfferLetterSentType,
}

// KnownTopic reports whether topic is one this service publishes.
func KnownTopic(topic string) bool {
	_, ok := topics[topic]
	return ok
}

func (CandidateRejectedEvent) Topic() string { return CandidateRejectedTopic }
func (CandidateRejectedEvent) Type() string { return CandidateRejectedType }
func (CandidateRejectedEvent) Aggregate() string { return AggregateCandidate }
func (e CandidateRejectedEvent) AggregateID() string { return e.CandidateID }

func (InterviewScheduledEvent) Topic() string { return InterviewScheduledTopic }
func (InterviewScheduledEvent) Type() string { return InterviewScheduledType }
func (InterviewScheduledEvent) Aggregate() string { return AggregateInterview }
func (e InterviewScheduledEvent) AggregateID() string { return e.InterviewID }

func (OfferLetterSentEvent) Topic() string { return OfferLetterSentTopic }
func (OfferLetterSentEvent) Type() string { return OfferLetterSentType }
func (OfferLetterSentEvent) Aggregate() string { return AggregateOfferLetter }
func (e OfferLetterSentEvent) AggregateID() string { return e.OfferLetterID }
