// Package meshio exports extracted surface meshes to interchange
// formats. It is the mesh-consumer collaborator of package surface: the
// extractor itself never touches files, materials or scenes.
//
// Formats:
//
//   - OBJ: plain-text quads, the lowest common denominator.
//   - GLB: binary glTF with flat per-face normals and a single colored
//     PBR material.
//   - STL: binary triangle soup via the sdfx render package.
//
// Quad-only consumers use WriteOBJ; GLB and STL triangulate through
// Mesh.Triangles.
package meshio
