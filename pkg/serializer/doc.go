// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serializer writes descriptors in JSON, YAML or table form.
//
// Destinations are stdout, a file, or a Kubernetes ConfigMap addressed as
// cm://namespace/name:
//
//	s, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "cm://ops/node-1")
//	if err != nil {
//	    return err
//	}
//	defer serializer.Close(s)
//	return s.Serialize(ctx, descriptor)
//
// The table form flattens nested values into dotted keys named after the
// JSON field names, so it lines up with the JSON output:
//
//	FIELD                  VALUE
//	-----                  -----
//	processor_features.[0] FPU
//	system_manufacturer    Dell Inc.
//
// RespondJSON and RespondYAML serve the same encodings over HTTP. They
// encode into a buffer first so an encoding failure never leaves a partial
// response.
package serializer
