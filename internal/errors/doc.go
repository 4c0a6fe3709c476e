// Package errors provides structured errors for the rpg-inventory service.
//
// Every error carries a Code, a caller-facing Message, an optional Cause and
// optional metadata. Codes survive wrapping, so a repository can return
// NotFound and the handler still sees NotFound after the orchestrator adds
// context.
//
// # Basic Usage
//
//	err := errors.NotFoundf("save %s not found", saveID)
//	err := errors.InvalidArgument("quantity must be positive").
//	    WithMeta("quantity", qty)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load game save")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
//
// # gRPC
//
// Handlers convert with ToGRPCError. Metadata that can be represented as a
// protobuf Struct travels as a status detail and is restored by FromGRPCError.
//
// # Layer Guidelines
//
// Repositories return NotFound / Internal and include keys in metadata.
// Orchestrators validate input (InvalidArgument), check state
// (FailedPrecondition) and wrap repository errors. Handlers only convert.
package errors
