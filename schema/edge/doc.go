// Package edge describes the relationships of a velox-ts model.
//
// Every edge has a Kind, and the generated query accessor depends on it:
//
//	// Foreign key: rows of Comment that reference this Post via "post".
//	edge.ForeignKeyTo("comments", "Comment", "post")
//	// → queryComments(): CommentQuery { return CommentQuery.fromForeignId(this.getId(), 'post'); }
//
//	// Field: the id of the referenced User is stored locally.
//	edge.FieldTo("author", "User")
//	// → queryAuthor(): UserQuery { return UserQuery.fromId(this.getAuthorId()); }
//
//	// Junction: many-to-many through a junction table.
//	edge.JunctionTo("tags", "Tag")
//	// → queryTags(): TagQuery { return TagQuery.fromId(this.getTagsId()); }
//
// The query type defaults to the referenced type followed by "Query" and can
// be overridden with QueryType.
package edge
