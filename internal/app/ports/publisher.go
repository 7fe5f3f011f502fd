package ports

// StatePublisher pushes a compact world frame to anyone watching. It
// must never block the action path; slow or gone watchers are the
// publisher's problem.
type StatePublisher interface {
	Publish(worldID string, frame any)
}
