package a

import "context"

func fetch(ctx context.Context, url string) error { return nil }

func fetchAll(ctx context.Context, urls ...string) error { return nil }

func caller(ctx context.Context) error {
	return fetch(context.Background(), "x") // want `Propagate context 'ctx' instead of explicit empty context in call to fetch`
}

func callerNil(ctx context.Context) error {
	return fetch(nil, "x") // want `Propagate context 'ctx' instead of nil context in call to fetch`
}

func callerConversion(ctx context.Context) error {
	return fetch(context.Context(nil), "x") // want `Propagate context 'ctx' instead of nil context in call to fetch`
}

func nearest(ctx context.Context) error {
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()
	_ = cctx

	return fetch(context.TODO(), "x") // want `Propagate context 'cctx' instead of explicit empty context in call to fetch`
}

func inner(parent context.Context) {
	for range 3 {
		ctx, cancel := context.WithCancel(parent)
		_ = ctx
		_ = fetchAll(context.Background(), "x", "y") // want `Propagate context 'ctx' instead of explicit empty context in call to fetchAll`
		cancel()
	}
}

type client struct{}

func (client) Do(ctx context.Context) error { return nil }

func method(ctx context.Context, c client) error {
	return c.Do(context.Background()) // want `Propagate context 'ctx' instead of explicit empty context in call to c\.Do`
}

func noContext() error {
	return fetch(context.Background(), "x")
}

func shadowed(ctx context.Context) {
	{
		ctx := 5
		_ = ctx
		_ = fetch(context.Background(), "x")
	}
}

func declaredAfter() {
	_ = fetch(context.Background(), "x")

	ctx := context.Background()
	_ = ctx
}

func selfReference() {
	ctx := func(ctx context.Context) context.Context { return ctx }(nil)
	_ = ctx
}

type job struct{ ctx context.Context }

func fieldInit(ctx context.Context) job {
	return job{ctx: context.Background()}
}

func assigned(ctx context.Context) {
	var c context.Context = context.Background()
	_ = c
}

func untypedParam(ctx context.Context) {
	use := func(v any) {}
	use(context.Background())
}

var _ = fetch(context.Background(), "init")

func parenthesized(ctx context.Context) error {
	return fetch((context.Background()), "x") // want `Propagate context 'ctx' instead of explicit empty context in call to fetch`
}
