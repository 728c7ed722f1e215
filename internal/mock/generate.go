package mock

//go:generate mockgen -package mock -destination random.go github.com/buildbarn/bb-synthgen/pkg/random SingleThreadedGenerator
//go:generate mockgen -package mock -destination clock.go github.com/buildbarn/bb-synthgen/pkg/clock Clock
