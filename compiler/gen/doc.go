// Package gen provides the TypeScript model generator of velox-ts.
//
// Given a Schema (ordered fields, ordered edges and an emission config) the
// generator produces the source of one class extending the runtime Model
// base class, with a typed getter per field and a typed query method per
// edge.
//
// # Architecture
//
//	Schema document (schema/*.yaml, *.json, *.msgpack) or Go schema
//	        ↓
//	   load.Schema
//	        ↓
//	   gen.Schema (resolved field types and edge kinds)
//	        ↓
//	   ModelGenerator.ClassSpec (imports, decorators, shape, members)
//	        ↓
//	   ClassSpec.Render → File{Name, Contents}
//	        ↓
//	   FileWriter (target directory)
//
// # Emitted Members
//
// For a schema named Post with a field title of type string and a
// foreign-key edge author pointing at User through the inverse relation
// posts, the generated Post.ts reads:
//
//	import Model from '@aphrodite/runtime/Model.js';
//	export default class Post
//	  extends Model<{
//	  title: string
//	}> {
//	  getTitle(): string {
//	    return this.data.title;
//	  }
//
//	  queryAuthor(): UserQuery {
//	    return UserQuery.fromForeignId(this.getId(), 'posts');
//	  }
//	}
//
// Keys that are not valid bare identifiers are quoted in the data shape and
// read with bracket access in getters. Field and junction edges query by the
// local id getter (this.get<Edge>Id()) instead of the model id.
//
// # Error Handling
//
//   - SchemaError: schema definition errors, including unmapped field types
//   - EdgeError: edge errors, including unhandled edge kinds
//   - ConfigError: configuration errors
//   - GenerationError: failures of a pipeline phase, wrapping the above
//
// Errors support errors.Is with the sentinels ErrInvalidSchema,
// ErrInvalidEdge, ErrUnmappedType, ErrUnhandledEdge, ErrGenerationFailed
// and ErrStale.
//
// # Configuration
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./generated"),
//	    gen.WithHeader("// Code generated by velox-ts. DO NOT EDIT."),
//	    gen.WithWorkers(4),
//	)
//	schemas, err := load.Dir("./schema")
//	metrics, err := gen.Run(ctx, cfg, schemas...)
package gen
