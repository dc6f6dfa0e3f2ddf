package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(commented, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(suppressions, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(tree, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
