package hover

// Attribute and matrix names shared by the shaders and the renderer.
const (
	AttribPosition    = "aPosition"
	AttribUV          = "aUV"
	UniformProjection = "uProjection"
	UniformView       = "uView"
	UniformModel      = "uModel"
)

// VertexShader bends the plane along uOffset.
const VertexShader = `
precision mediump float;

attribute vec3 aPosition;
attribute vec2 aUV;

uniform mat4 uProjection;
uniform mat4 uView;
uniform mat4 uModel;
uniform vec2 uOffset;

varying vec2 vUV;

const float PI = 3.1415926535897932384626433832795;

vec3 deformationCurve(vec3 position, vec2 uv, vec2 offset) {
	position.x = position.x + (sin(uv.y * PI) * offset.x);
	position.y = position.y + (sin(uv.x * PI) * offset.y);
	return position;
}

void main() {
	vUV = aUV;
	vec3 p = deformationCurve(aPosition, aUV, uOffset);
	gl_Position = uProjection * uView * uModel * vec4(p, 1.0);
}
`

// FragmentShader splits the red channel along uOffset and fades by uAlpha.
const FragmentShader = `
precision mediump float;

uniform sampler2D uTexture;
uniform float uAlpha;
uniform vec2 uOffset;

varying vec2 vUV;

vec3 rgbShift(sampler2D tex, vec2 uv, vec2 offset) {
	float r = texture2D(tex, uv + offset).r;
	vec2 gb = texture2D(tex, uv).gb;
	return vec3(r, gb);
}

void main() {
	vec3 color = rgbShift(uTexture, vUV, uOffset);
	gl_FragColor = vec4(color, uAlpha);
}
`
