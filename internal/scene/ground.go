package scene

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"speeder/internal/assets"
	"speeder/internal/config"
)

// Ground shader: tiles every map by `tiling`, lifts vertices by the displacement map, and shades
// with ambient light only (albedo × ambient × occlusion from the ARM red channel).
const (
	groundVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
uniform mat4 mvp;
uniform vec2 tiling;
uniform sampler2D displacementMap;
uniform float displacementScale;
out vec2 fragTexCoord;
void main() {
  vec2 uv = vertexTexCoord * tiling;
  vec3 pos = vertexPosition;
  pos.y += texture(displacementMap, uv).r * displacementScale;
  fragTexCoord = uv;
  gl_Position = mvp * vec4(pos, 1.0);
}
`
	groundFS = `#version 330
in vec2 fragTexCoord;
uniform sampler2D texture0;
uniform sampler2D armMap;
uniform vec4 colDiffuse;
uniform vec4 ambient;
uniform float occlusionStrength;
out vec4 finalColor;
void main() {
  vec4 albedo = texture(texture0, fragTexCoord) * colDiffuse;
  float ao = mix(1.0, texture(armMap, fragTexCoord).r, occlusionStrength);
  finalColor = vec4(albedo.rgb * ambient.rgb * ao, albedo.a);
}
`
)

type groundMap struct {
	index  int32
	loader *assets.Finisher[image.Image, rl.Texture2D]
	done   bool
}

// ground is the textured plane under the speeder. GPU resources are created on the first draw;
// each texture is attached when its load finishes.
type ground struct {
	cfg    config.Ground
	mesh   rl.Mesh
	mtl    rl.Material
	shader rl.Shader
	ready  bool
	maps   []*groundMap

	displacementLoc int32
	occlusionLoc    int32
}

func newGround(log zerolog.Logger, cfg config.Ground) *ground {
	return &ground{
		cfg: cfg,
		maps: []*groundMap{
			{index: rl.MapAlbedo, loader: loadTexture(log, cfg.Diffuse, decodeImage)},
			{index: rl.MapHeight, loader: loadTexture(log, cfg.Displacement, decodeHeight)},
			{index: rl.MapNormal, loader: loadTexture(log, cfg.Normal, decodeImage)},
			{index: rl.MapOcclusion, loader: loadTexture(log, cfg.ARM, decodeImage)},
		},
	}
}

// ensureLoaded creates the mesh, material, and shader once the GL context exists.
func (g *ground) ensureLoaded() {
	if g.ready {
		return
	}
	g.ready = true
	g.mesh = rl.GenMeshPlane(g.cfg.Size, g.cfg.Size, int(g.cfg.Segments), int(g.cfg.Segments))
	g.mtl = rl.LoadMaterialDefault()

	shader := rl.LoadShaderFromMemory(groundVS, groundFS)
	if !rl.IsShaderValid(shader) {
		return
	}
	shader.UpdateLocation(rl.ShaderLocMapHeight, rl.GetShaderLocation(shader, "displacementMap"))
	shader.UpdateLocation(rl.ShaderLocMapOcclusion, rl.GetShaderLocation(shader, "armMap"))
	g.shader = shader
	g.mtl.Shader = shader

	setFloats(shader, "tiling", []float32{g.cfg.Repeat, g.cfg.Repeat}, rl.ShaderUniformVec2)
	setFloats(shader, "ambient", []float32{1, 1, 1, 1}, rl.ShaderUniformVec4)
	g.displacementLoc = rl.GetShaderLocation(shader, "displacementScale")
	g.occlusionLoc = rl.GetShaderLocation(shader, "occlusionStrength")
	// Until their textures arrive, displacement and occlusion contribute nothing.
	rl.SetShaderValue(shader, g.displacementLoc, []float32{0}, rl.ShaderUniformFloat)
	rl.SetShaderValue(shader, g.occlusionLoc, []float32{0}, rl.ShaderUniformFloat)
}

// poll attaches any textures that finished loading since the last frame.
func (g *ground) poll() {
	for _, m := range g.maps {
		if m.done {
			continue
		}
		tex, ok := m.loader.Poll()
		if !ok {
			if m.loader.Failed() {
				m.done = true
			}
			continue
		}
		m.done = true
		rl.SetMaterialTexture(&g.mtl, m.index, tex)
		if !rl.IsShaderValid(g.shader) {
			continue
		}
		switch m.index {
		case rl.MapHeight:
			rl.SetShaderValue(g.shader, g.displacementLoc, []float32{g.cfg.DisplacementScale}, rl.ShaderUniformFloat)
		case rl.MapOcclusion:
			rl.SetShaderValue(g.shader, g.occlusionLoc, []float32{1}, rl.ShaderUniformFloat)
		}
	}
}

func (g *ground) draw() {
	rl.DrawMesh(g.mesh, g.mtl, rl.MatrixIdentity())
}

func (g *ground) unload() {
	if !g.ready {
		return
	}
	rl.UnloadMesh(&g.mesh)
	rl.UnloadMaterial(g.mtl)
}

func setFloats(shader rl.Shader, name string, v []float32, kind rl.ShaderUniformDataType) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValue(shader, loc, v, kind)
	}
}
