/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package storage persists projects on disk. A project is a directory with a
// project.json manifest, an assets folder, an exports folder and a backups
// folder with timestamped copies of earlier manifests. Saves are
// transactional: the new manifest is written to a temp file and renamed over
// the old one, and the previous manifest is backed up first.
//
// A per-project SQLite index under .zeus/ provides full-text search over
// component text without touching the manifest.
package storage
