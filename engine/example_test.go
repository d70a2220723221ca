package engine_test

import (
	"context"
	"fmt"

	"github.com/spacetimeops/relativity/cache"
	"github.com/spacetimeops/relativity/engine"
)

func ExampleEngine_Calculate() {
	store := cache.NewFIFOStore(cache.DefaultPolicy())
	e := engine.New(store, cache.NewDefaultKeyer(), nil)

	res, err := e.Calculate(context.Background(), engine.Request{
		Type: "schwarzschild",
		Inputs: map[string]any{
			"mass":   1.0,
			"radius": 10.0,
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("g_tt = %.2f\n", res.Metric.Gtt)
	fmt.Printf("event horizon = %.0f\n", *res.EventHorizon)
	// Output:
	// g_tt = -0.80
	// event horizon = 2
}

func ExampleClassify() {
	store := cache.NewFIFOStore(cache.DefaultPolicy())
	e := engine.New(store, cache.NewDefaultKeyer(), nil)

	_, err := e.Calculate(context.Background(), engine.Request{
		Type:   "kerr",
		Inputs: map[string]any{"mass": 1.0, "radius": 10.0, "angular_momentum": 1.5},
	})

	typed := engine.Classify(err)
	fmt.Println(typed.Kind.HTTPStatus(), typed.Message)
	// Output:
	// 400 Angular momentum squared cannot exceed mass squared
}
