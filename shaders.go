package main

// Custom fragment shaders passed with -frag receive the same inputs and
// uniforms as sceneFragmentShader.

const sceneVertexShader = `
#version 460 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec3 color;
layout(location = 3) in vec2 texCoord;

uniform mat4 uModel;
uniform mat4 uViewProjection;
uniform mat3 uNormalMatrix;

out vec3 vWorldPosition;
out vec3 vNormal;
out vec3 vColor;
out vec2 vUV;

void main() {
	vec4 world = uModel * vec4(position, 1.0);
	vWorldPosition = world.xyz;
	vNormal = normalize(uNormalMatrix * normal);
	vColor = color;
	vUV = texCoord;
	gl_Position = uViewProjection * world;
}`

const sceneFragmentShader = `
#version 460 core
in vec3 vWorldPosition;
in vec3 vNormal;
in vec3 vColor;
in vec2 vUV;

out vec4 fragColor;

uniform vec3 uColor;
uniform float uRoughness;
uniform float uMetalness;
uniform float uReflectivity;
uniform float uClearcoat;
uniform bool uVertexColors;
uniform bool uTextured;
uniform sampler2D uTexture;
uniform vec3 uCameraPosition;
uniform vec3 uLightDirection;
uniform vec3 uEnvironment;

void main() {
	vec3 base = uColor;
	if (uVertexColors) {
		base *= vColor;
	}
	if (uTextured) {
		base *= texture(uTexture, vUV).rgb;
	}

	vec3 n = normalize(vNormal);
	if (!gl_FrontFacing) {
		n = -n;
	}
	vec3 v = normalize(uCameraPosition - vWorldPosition);
	vec3 l = normalize(-uLightDirection);
	vec3 h = normalize(l + v);

	float diffuse = max(dot(n, l), 0.0);
	float nh = max(dot(n, h), 0.0);
	float specular = pow(nh, mix(256.0, 4.0, uRoughness));
	vec3 specularColor = mix(vec3(0.04 + 0.12 * uReflectivity), base, uMetalness);
	float coat = uClearcoat * 0.25 * pow(nh, 128.0);

	// Hemisphere lighting in place of an environment map.
	vec3 ambient = mix(uEnvironment * 0.4, uEnvironment, 0.5 + 0.5 * n.y);

	vec3 rgb = base * (1.0 - 0.5 * uMetalness) * (ambient + diffuse) + specularColor * specular + vec3(coat);
	fragColor = vec4(rgb, 1.0);
}`

const blitVertexShader = `
#version 460 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec2 texCoord;
out vec2 uv;
void main() {
	uv = texCoord;
	gl_Position = vec4(position, 0.0, 1.0);
}`

const blitFragmentShader = `
#version 460 core
in vec2 uv;
out vec4 fragColor;
uniform sampler2D tex;
void main() {
	fragColor = texture(tex, uv);
}`
