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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/NVIDIA/hostinfo/pkg/defaults"
	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
	"github.com/NVIDIA/hostinfo/pkg/header"
	"github.com/NVIDIA/hostinfo/pkg/k8s/client"
)

const (
	// ConfigMapURIScheme prefixes output paths that name a ConfigMap.
	ConfigMapURIScheme = "cm://"

	// FieldManager owns the fields written by server-side apply.
	FieldManager = "hostinfo"

	appName = "hostinfo"
)

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	client    kubernetes.Interface
}

// ConfigMapOption configures a ConfigMapWriter.
type ConfigMapOption func(*ConfigMapWriter)

// WithClient sets the Kubernetes client. Without it the writer uses the
// shared client from client.GetKubeClient.
func WithClient(c kubernetes.Interface) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.client = c
	}
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapOption) *ConfigMapWriter {
	w := &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalize(format),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serialize writes v to the ConfigMap.
// The ConfigMap will have:
// - data.descriptor.{json|yaml|txt}: the serialized document
// - data.format: the format used
// - data.timestamp: RFC 3339 time of collection
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	kc := w.client
	if kc == nil {
		shared, _, err := client.GetKubeClient()
		if err != nil {
			return herrors.Wrap(herrors.ErrCodeUnavailable, "failed to get kubernetes client", err)
		}
		kc = shared
	}

	content, err := Marshal(w.format, v)
	if err != nil {
		return err
	}

	kind, version, timestamp := documentInfo(v)

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      appName,
			"app.kubernetes.io/component": kind,
			"app.kubernetes.io/version":   version,
		}).
		WithData(map[string]string{
			fmt.Sprintf("descriptor.%s", w.format.Extension()): string(content),
			"format":    string(w.format),
			"timestamp": timestamp,
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	// Force takes ownership from earlier field managers.
	_, err = kc.CoreV1().ConfigMaps(w.namespace).Apply(
		writeCtx,
		configMap,
		metav1.ApplyOptions{
			FieldManager: FieldManager,
			Force:        true,
		},
	)
	if err != nil {
		return herrors.WrapWithContext(herrors.ErrCodeInternal, "failed to apply ConfigMap", err,
			map[string]any{"namespace": w.namespace, "name": w.name})
	}

	return nil
}

// documentInfo reads kind, version and timestamp from a document header,
// substituting defaults when v has none.
func documentInfo(v any) (kind, version, timestamp string) {
	if h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		kind = h.GetKind().String()
		md := h.GetMetadata()
		version = md[header.MetadataVersion]
		timestamp = md[header.MetadataTimestamp]
	}

	if kind == "" {
		kind = "descriptor"
	}
	if version == "" {
		version = "unknown"
	}
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return kind, version, timestamp
}

// Close is a no-op for ConfigMapWriter as there are no resources to release.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name
// and returns the namespace and name components.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", herrors.New(herrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme))
	}

	namespace, name, found := strings.Cut(strings.TrimPrefix(uri, ConfigMapURIScheme), "/")
	if !found {
		return "", "", herrors.New(herrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri))
	}

	namespace = strings.TrimSpace(namespace)
	name = strings.TrimSpace(name)

	if namespace == "" {
		return "", "", herrors.New(herrors.ErrCodeInvalidRequest, "invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", herrors.New(herrors.ErrCodeInvalidRequest, "invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
